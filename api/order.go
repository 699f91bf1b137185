// File: api/order.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Memory-order annotations for atomic operations and fences.
//
// Go's sync/atomic executes every operation with sequentially consistent
// semantics, so at runtime all orders behave as SeqCst. The annotation still
// matters: it records the caller's contract, is validated by debug builds
// (see atomics order checks), and leaves room for weaker code generation on
// backends that can honor it.

package api

// MemOrder is a memory-ordering annotation, mirroring the conventional
// relaxed..seq_cst ladder.
type MemOrder int

const (
	Relaxed MemOrder = iota
	Consume
	Acquire
	Release
	AcqRel
	SeqCst
)

// OrderDefault is the order used by the convenience forms without an
// explicit order parameter. It is the strictest available.
const OrderDefault = SeqCst

func (o MemOrder) String() string {
	switch o {
	case Relaxed:
		return "relaxed"
	case Consume:
		return "consume"
	case Acquire:
		return "acquire"
	case Release:
		return "release"
	case AcqRel:
		return "acq_rel"
	case SeqCst:
		return "seq_cst"
	default:
		return "invalid"
	}
}

// ValidForLoad reports whether o may annotate a pure read. A pure read
// cannot establish a release, so Release and AcqRel are excluded.
func (o MemOrder) ValidForLoad() bool {
	switch o {
	case Relaxed, Consume, Acquire, SeqCst:
		return true
	}
	return false
}

// ValidForStore reports whether o may annotate a pure write. A pure write
// cannot establish an acquire, so Consume, Acquire and AcqRel are excluded.
func (o MemOrder) ValidForStore() bool {
	switch o {
	case Relaxed, Release, SeqCst:
		return true
	}
	return false
}

// ValidForRMW reports whether o may annotate a read-modify-write. Every
// order is permitted.
func (o MemOrder) ValidForRMW() bool {
	return o >= Relaxed && o <= SeqCst
}
