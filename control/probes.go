// control/probes.go
// Author: momentics <momentics@gmail.com>
//
// Domain wiring: exposes wait-table and fence counters through the probe
// registry, and binds fence strategy selection to the config store.

package control

import (
	"github.com/momentics/atomicwait/fence"
	"github.com/momentics/atomicwait/waitnotify"
)

// FenceForceFullKey is the config key that, when true, promotes every
// scoped fence to the conservative full fence.
const FenceForceFullKey = "fence.force_full"

// AttachWaitTable registers the table's counters under the given prefix.
func AttachWaitTable(dp *DebugProbes, prefix string, t *waitnotify.Table) {
	dp.RegisterProbe(prefix+".stats", func() any {
		return t.Snapshot()
	})
}

// PublishWaitTable copies the table's counters into mr under prefix. Call
// it on whatever cadence the exporter polls.
func PublishWaitTable(mr *MetricsRegistry, prefix string, t *waitnotify.Table) {
	s := t.Snapshot()
	mr.Set(prefix+".waits", s.Waits)
	mr.Set(prefix+".immediate", s.Immediate)
	mr.Set(prefix+".spins", s.Spins)
	mr.Set(prefix+".parks", s.Parks)
	mr.Set(prefix+".spurious", s.Spurious)
	mr.Set(prefix+".notifies", s.Notifies)
	mr.Set(prefix+".woken", s.Woken)
	mr.Set(prefix+".timeouts", s.Timeouts)
}

// PublishFence copies fence dispatch counters into mr.
func PublishFence(mr *MetricsRegistry) {
	s := fence.Snapshot()
	mr.Set("fence.elided", s.Elided)
	mr.Set("fence.promoted", s.Promoted)
	mr.Set("fence.full", s.Full)
}

// AttachFence registers fence dispatch counters.
func AttachFence(dp *DebugProbes) {
	dp.RegisterProbe("fence.stats", func() any {
		return fence.Snapshot()
	})
}

// BindFenceConfig subscribes fence strategy selection to cs. The current
// value applies immediately and on every reload.
func BindFenceConfig(cs *ConfigStore) {
	apply := func() {
		fence.ForceFull(cs.GetBool(FenceForceFullKey))
	}
	cs.OnReload(apply)
	apply()
}
