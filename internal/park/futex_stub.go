// File: internal/park/futex_stub.go
//go:build !linux
// +build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub futex backend for platforms without a usable futex syscall. The wait
// table never routes here when FutexSupported reports false; the functions
// exist so callers compile unchanged.

package park

import (
	"time"

	"github.com/momentics/atomicwait/api"
)

// FutexSupported reports that kernel futex parking is not available.
func FutexSupported() bool { return false }

// FutexWait is unreachable on this platform.
func FutexWait(word *uint32, old uint32) error { return api.ErrNotSupported }

// FutexWaitTimeout is unreachable on this platform. It reports a wakeup so
// a caller that somehow reaches it re-checks its condition instead of
// treating the call as an expired deadline.
func FutexWaitTimeout(word *uint32, old uint32, d time.Duration) (bool, error) {
	return true, api.ErrNotSupported
}

// FutexWake is unreachable on this platform.
func FutexWake(word *uint32, n int) int { return 0 }
