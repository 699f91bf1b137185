// File: atomics/flag.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Flag is a lock-free single-bit state with ordered test, set and clear.
// The zero value is clear. Flags must not be copied after first use: the
// address of the storage word is the identity the wait/notify subsystem
// keys on.

package atomics

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/atomicwait/api"
)

const (
	flagClear uint32 = 0
	flagSet   uint32 = 1
)

// Flag is an atomic boolean flag. It is always in exactly one of two
// states, set or clear; no torn state is observable. The zero value is a
// clear flag ready to use.
type Flag struct {
	_ noCopy
	v uint32
}

// NewFlag returns a flag in the guaranteed clear state. Equivalent to a
// zero-valued Flag; provided as the explicit clear initializer.
func NewFlag() *Flag {
	return &Flag{}
}

// TestExplicit atomically reads the current state without modifying it.
// order must be valid for a pure read (not Release, not AcqRel).
func (f *Flag) TestExplicit(order api.MemOrder) bool {
	assertLoadOrder(order)
	return atomic.LoadUint32(&f.v) == flagSet
}

// Test is TestExplicit with the default (strictest) order.
func (f *Flag) Test() bool {
	return f.TestExplicit(api.OrderDefault)
}

// TestAndSetExplicit atomically sets the flag and returns the prior state.
// It is a read-modify-write: it occupies exactly one position in the
// modification order of the flag. Any order is permitted.
func (f *Flag) TestAndSetExplicit(order api.MemOrder) bool {
	assertRMWOrder(order)
	return atomic.SwapUint32(&f.v, flagSet) == flagSet
}

// TestAndSet is TestAndSetExplicit with the default order.
func (f *Flag) TestAndSet() bool {
	return f.TestAndSetExplicit(api.OrderDefault)
}

// ClearExplicit atomically sets the flag to clear. order must be valid for
// a pure write (not Consume, Acquire, nor AcqRel).
func (f *Flag) ClearExplicit(order api.MemOrder) {
	assertStoreOrder(order)
	atomic.StoreUint32(&f.v, flagClear)
}

// Clear is ClearExplicit with the default order.
func (f *Flag) Clear() {
	f.ClearExplicit(api.OrderDefault)
}

// Observe implements api.Waitable[bool]; identical to TestExplicit.
func (f *Flag) Observe(order api.MemOrder) bool {
	return f.TestExplicit(order)
}

// Addr returns the flag's wait/notify identity.
func (f *Flag) Addr() uintptr {
	return uintptr(unsafe.Pointer(&f.v))
}

// Word exposes the storage word for futex-capable parking backends.
func (f *Flag) Word() *uint32 {
	return &f.v
}

// Compile-time contract checks.
var (
	_ api.Waitable[bool] = (*Flag)(nil)
	_ api.Word           = (*Flag)(nil)
)
