// File: atomics/ordercheck_on.go
//go:build atomicdebug
// +build atomicdebug

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Debug-build order assertions. A forbidden order argument is a contract
// violation; tagged builds turn it into an immediate panic at the call site
// instead of silently undefined behavior.

package atomics

import (
	"fmt"

	"github.com/momentics/atomicwait/api"
)

func assertLoadOrder(o api.MemOrder) {
	if !o.ValidForLoad() {
		panic(fmt.Sprintf("atomics: %v: order %v forbidden for a pure read", api.ErrInvalidOrder, o))
	}
}

func assertStoreOrder(o api.MemOrder) {
	if !o.ValidForStore() {
		panic(fmt.Sprintf("atomics: %v: order %v forbidden for a pure write", api.ErrInvalidOrder, o))
	}
}

func assertRMWOrder(o api.MemOrder) {
	if !o.ValidForRMW() {
		panic(fmt.Sprintf("atomics: %v: order %v out of range", api.ErrInvalidOrder, o))
	}
}
