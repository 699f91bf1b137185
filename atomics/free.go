// File: atomics/free.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Free-function mirrors of the Flag methods for pointer-based call sites,
// with Explicit variants taking an order parameter. The plain forms use the
// default (strictest) order.

package atomics

import "github.com/momentics/atomicwait/api"

// FlagTest atomically reads f without modifying it.
func FlagTest(f *Flag) bool { return f.Test() }

// FlagTestExplicit is FlagTest with an explicit order.
func FlagTestExplicit(f *Flag, order api.MemOrder) bool { return f.TestExplicit(order) }

// FlagTestAndSet atomically sets f and returns the prior state.
func FlagTestAndSet(f *Flag) bool { return f.TestAndSet() }

// FlagTestAndSetExplicit is FlagTestAndSet with an explicit order.
func FlagTestAndSetExplicit(f *Flag, order api.MemOrder) bool { return f.TestAndSetExplicit(order) }

// FlagClear atomically clears f.
func FlagClear(f *Flag) { f.Clear() }

// FlagClearExplicit is FlagClear with an explicit order.
func FlagClearExplicit(f *Flag, order api.MemOrder) { f.ClearExplicit(order) }
