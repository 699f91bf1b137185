// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: Apache-2.0

package api

// Waitable is an atomically observable location the wait/notify subsystem
// can block on. The address identifies the location process-wide: two
// Waitables reporting the same Addr are the same location for wakeup
// purposes.
type Waitable[T comparable] interface {
	// Observe atomically reads the current value with the given order.
	Observe(order MemOrder) T

	// Addr returns the stable address of the underlying storage. It is
	// used only as a wait-set key and is never dereferenced by the table.
	Addr() uintptr
}

// Word is an optional fast-path contract for locations whose storage is a
// single 32-bit word at a stable address. Such locations can be parked on
// directly by a kernel futex backend.
type Word interface {
	// Word returns a pointer to the 32-bit storage word.
	Word() *uint32
}

// Notifier abstracts the wakeup side of a wait table, so higher layers can
// depend on the behavior without importing the table implementation.
type Notifier interface {
	// NotifyOne unblocks at most one waiter parked on addr. No waiters is
	// a correct no-op.
	NotifyOne(addr uintptr)

	// NotifyAll unblocks every waiter parked on addr.
	NotifyAll(addr uintptr)
}
