// File: facade/atomicwait.go
// Unified facade layer for the atomicwait library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file binds the lower packages behind the convenience surface most
// callers want: flag construction, flag-specific wait/notify free functions
// over the process-default wait table, the scoped fence, and control-plane
// attachment for metrics and debug probes.

package facade

import (
	"time"

	"github.com/momentics/atomicwait/api"
	"github.com/momentics/atomicwait/atomics"
	"github.com/momentics/atomicwait/control"
	"github.com/momentics/atomicwait/fence"
	"github.com/momentics/atomicwait/waitnotify"
)

// NewFlag returns a flag in the guaranteed clear state.
func NewFlag() *atomics.Flag {
	return atomics.NewFlag()
}

// FlagWait blocks until f's state, observed with the default order, differs
// from old. Spurious returns are permitted; callers with a condition beyond
// the flag bit itself re-check in a loop.
func FlagWait(f *atomics.Flag, old bool) {
	waitnotify.Wait(waitnotify.Default(), f, old)
}

// FlagWaitExplicit is FlagWait with an explicit observation order. order
// must be valid for a pure read.
func FlagWaitExplicit(f *atomics.Flag, old bool, order api.MemOrder) {
	waitnotify.WaitExplicit(waitnotify.Default(), f, old, order)
}

// FlagWaitTimeout is FlagWait bounded by d; false means the deadline
// elapsed with the flag still equal to old.
func FlagWaitTimeout(f *atomics.Flag, old bool, d time.Duration) bool {
	return waitnotify.WaitTimeout(waitnotify.Default(), f, old, api.OrderDefault, d)
}

// FlagNotifyOne unblocks at most one waiter blocked on f.
func FlagNotifyOne(f *atomics.Flag) {
	waitnotify.NotifyOne(waitnotify.Default(), f)
}

// FlagNotifyAll unblocks every waiter blocked on f.
func FlagNotifyAll(f *atomics.Flag) {
	waitnotify.NotifyAll(waitnotify.Default(), f)
}

// Fence issues an object-scoped fence; see fence.Scoped.
func Fence(order api.MemOrder, objs ...fence.Span) {
	fence.Scoped(order, objs...)
}

// FenceFull issues the conservative unscoped fence.
func FenceFull(order api.MemOrder) {
	fence.Full(order)
}

// AttachControl registers the default table's and the fence engine's
// counters with the given probe registry.
func AttachControl(dp *control.DebugProbes) {
	control.AttachWaitTable(dp, "waitnotify.default", waitnotify.Default())
	control.AttachFence(dp)
}

// PublishMetrics copies the default table's and the fence engine's current
// counters into mr.
func PublishMetrics(mr *control.MetricsRegistry) {
	control.PublishWaitTable(mr, "waitnotify.default", waitnotify.Default())
	control.PublishFence(mr)
}
