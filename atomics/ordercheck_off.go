// File: atomics/ordercheck_off.go
//go:build !atomicdebug
// +build !atomicdebug

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Release-build order assertions compile to nothing.

package atomics

import "github.com/momentics/atomicwait/api"

func assertLoadOrder(api.MemOrder)  {}
func assertStoreOrder(api.MemOrder) {}
func assertRMWOrder(api.MemOrder)   {}
