// File: atomics/integral.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-width integral wrappers with explicit-order operations. Both types
// are always lock-free: every operation is a single sync/atomic instruction
// regardless of contention or address, provided natural alignment.

package atomics

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/atomicwait/api"
)

// Uint32 is an always-lock-free 32-bit atomic integer. The zero value is 0.
// Must not be copied after first use.
type Uint32 struct {
	_ noCopy
	v uint32
}

// LoadExplicit atomically reads the value. order must be valid for a read.
func (u *Uint32) LoadExplicit(order api.MemOrder) uint32 {
	assertLoadOrder(order)
	return atomic.LoadUint32(&u.v)
}

// StoreExplicit atomically writes val. order must be valid for a write.
func (u *Uint32) StoreExplicit(val uint32, order api.MemOrder) {
	assertStoreOrder(order)
	atomic.StoreUint32(&u.v, val)
}

// SwapExplicit atomically replaces the value and returns the prior one.
func (u *Uint32) SwapExplicit(val uint32, order api.MemOrder) uint32 {
	assertRMWOrder(order)
	return atomic.SwapUint32(&u.v, val)
}

// AddExplicit atomically adds delta and returns the new value.
func (u *Uint32) AddExplicit(delta uint32, order api.MemOrder) uint32 {
	assertRMWOrder(order)
	return atomic.AddUint32(&u.v, delta)
}

// CompareAndSwapExplicit executes the compare-and-swap for u.
func (u *Uint32) CompareAndSwapExplicit(old, new uint32, order api.MemOrder) bool {
	assertRMWOrder(order)
	return atomic.CompareAndSwapUint32(&u.v, old, new)
}

// Default-order conveniences.

func (u *Uint32) Load() uint32               { return u.LoadExplicit(api.OrderDefault) }
func (u *Uint32) Store(val uint32)           { u.StoreExplicit(val, api.OrderDefault) }
func (u *Uint32) Swap(val uint32) uint32     { return u.SwapExplicit(val, api.OrderDefault) }
func (u *Uint32) Add(delta uint32) uint32    { return u.AddExplicit(delta, api.OrderDefault) }
func (u *Uint32) CompareAndSwap(o, n uint32) bool {
	return u.CompareAndSwapExplicit(o, n, api.OrderDefault)
}

// Observe implements api.Waitable[uint32]; identical to LoadExplicit.
func (u *Uint32) Observe(order api.MemOrder) uint32 {
	return u.LoadExplicit(order)
}

// Addr returns the wait/notify identity of u.
func (u *Uint32) Addr() uintptr {
	return uintptr(unsafe.Pointer(&u.v))
}

// Word exposes the storage word for futex-capable parking backends.
func (u *Uint32) Word() *uint32 {
	return &u.v
}

// Uint64 is an always-lock-free 64-bit atomic integer. The zero value is 0.
// Must not be copied after first use.
type Uint64 struct {
	_ noCopy
	v uint64
}

// LoadExplicit atomically reads the value. order must be valid for a read.
func (u *Uint64) LoadExplicit(order api.MemOrder) uint64 {
	assertLoadOrder(order)
	return atomic.LoadUint64(&u.v)
}

// StoreExplicit atomically writes val. order must be valid for a write.
func (u *Uint64) StoreExplicit(val uint64, order api.MemOrder) {
	assertStoreOrder(order)
	atomic.StoreUint64(&u.v, val)
}

// SwapExplicit atomically replaces the value and returns the prior one.
func (u *Uint64) SwapExplicit(val uint64, order api.MemOrder) uint64 {
	assertRMWOrder(order)
	return atomic.SwapUint64(&u.v, val)
}

// AddExplicit atomically adds delta and returns the new value.
func (u *Uint64) AddExplicit(delta uint64, order api.MemOrder) uint64 {
	assertRMWOrder(order)
	return atomic.AddUint64(&u.v, delta)
}

// CompareAndSwapExplicit executes the compare-and-swap for u.
func (u *Uint64) CompareAndSwapExplicit(old, new uint64, order api.MemOrder) bool {
	assertRMWOrder(order)
	return atomic.CompareAndSwapUint64(&u.v, old, new)
}

// Default-order conveniences.

func (u *Uint64) Load() uint64            { return u.LoadExplicit(api.OrderDefault) }
func (u *Uint64) Store(val uint64)        { u.StoreExplicit(val, api.OrderDefault) }
func (u *Uint64) Swap(val uint64) uint64  { return u.SwapExplicit(val, api.OrderDefault) }
func (u *Uint64) Add(delta uint64) uint64 { return u.AddExplicit(delta, api.OrderDefault) }
func (u *Uint64) CompareAndSwap(o, n uint64) bool {
	return u.CompareAndSwapExplicit(o, n, api.OrderDefault)
}

// Observe implements api.Waitable[uint64]; identical to LoadExplicit.
func (u *Uint64) Observe(order api.MemOrder) uint64 {
	return u.LoadExplicit(order)
}

// Addr returns the wait/notify identity of u.
func (u *Uint64) Addr() uintptr {
	return uintptr(unsafe.Pointer(&u.v))
}

var (
	_ api.Waitable[uint32] = (*Uint32)(nil)
	_ api.Word             = (*Uint32)(nil)
	_ api.Waitable[uint64] = (*Uint64)(nil)
)
