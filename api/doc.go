// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the contracts shared by the atomicwait library:
// memory-order annotations, atomic-location interfaces for the wait/notify
// subsystem, capability constants, and common error types.
//
// The package contains declarations only; behavior lives in atomics,
// waitnotify and fence.
package api
