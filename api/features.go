// File: api/features.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Compile-time capability facts a consumer can branch on with constant
// conditions. These describe the build, not runtime behavior.

package api

const (
	// CapFlagWaitNotify reports that atomics.Flag supports Test plus the
	// blocking wait and notify operations on every supported platform.
	CapFlagWaitNotify = true

	// CapAlwaysLockFreeInt reports that the fixed-width integral wrappers
	// (atomics.Uint32, atomics.Uint64) are lock-free on every supported
	// architecture, including plain aligned addresses.
	CapAlwaysLockFreeInt = true
)
