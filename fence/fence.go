// File: fence/fence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scoped and full fences. Go exposes no standalone hardware fence, so the
// full fence is spelled as a sequentially consistent read-modify-write on a
// private, padded word: under the Go memory model every pair of such RMWs
// is totally ordered, and the later one observes everything sequenced
// before the earlier one. That is exactly the synchronizes-with edge a
// seq_cst fence pair provides, restricted to callers of this package, which
// is the only scope a scoped fence promises anyway.
//
// The elided path issues only a code-motion barrier: a call the compiler
// must not reorder memory accesses across and cannot inline away. It
// performs no cross-thread synchronization at all, so excluded objects can
// never pick up an accidental ordering edge from an elided fence.

package fence

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/atomicwait/api"
	"github.com/momentics/atomicwait/atomics"
)

// fenceWord is the private synchronization word behind Full. Padded on both
// sides so unrelated data never shares its granule; a fence primitive that
// itself false-shared would be an unfortunate joke.
var fenceWord struct {
	_ cpu.CacheLinePad
	v uint32
	_ cpu.CacheLinePad
}

// Stats counts fence dispatch decisions.
type Stats struct {
	Elided   uint64 // scoped calls satisfied by a compiler barrier
	Promoted uint64 // scoped calls promoted to a full fence
	Full     uint64 // direct Full calls
}

var stats struct {
	elided   atomics.Uint64
	promoted atomics.Uint64
	full     atomics.Uint64
}

// forceFull, when nonzero, disables elision and promotes every scoped call.
// The conservative strategy must always remain reachable.
var forceFull atomics.Uint32

// ForceFull switches every subsequent Scoped call to the full-fence
// strategy (true) or re-enables elision (false).
func ForceFull(on bool) {
	if on {
		forceFull.Store(1)
	} else {
		forceFull.Store(0)
	}
}

// Scoped issues a fence with the given order whose effect is limited to the
// named objects. For the named objects the ordering is indistinguishable
// from an unscoped fence of the same order; for everything else the call
// provides no ordering whatsoever.
//
// With an empty object set the call degrades to a full unscoped fence.
// A Relaxed fence has no ordering effect and issues nothing.
func Scoped(order api.MemOrder, objs ...Span) {
	if order == api.Relaxed {
		return
	}
	if len(objs) == 0 || forceFull.Load() != 0 || !confined(objs) {
		stats.promoted.Add(1)
		fullFence()
		return
	}
	// Every named object sits inside one coherence granule; the hardware
	// orders intra-granule accesses for free. Only the compiler needs
	// restraining.
	stats.elided.Add(1)
	compilerBarrier()
}

// Full issues an unscoped fence with the given order. Always correct,
// never elided.
func Full(order api.MemOrder) {
	if order == api.Relaxed {
		return
	}
	stats.full.Add(1)
	fullFence()
}

func fullFence() {
	atomic.AddUint32(&fenceWord.v, 1)
}

// compilerBarrier prevents the compiler from moving memory accesses across
// the call. It emits no synchronizing instruction; go:noinline keeps the
// call (and therefore the barrier) in place.
//
//go:noinline
func compilerBarrier() {}

// Snapshot returns current dispatch counters.
func Snapshot() Stats {
	return Stats{
		Elided:   stats.elided.Load(),
		Promoted: stats.promoted.Load(),
		Full:     stats.full.Load(),
	}
}
