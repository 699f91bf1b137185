// File: internal/park/futex_linux.go
//go:build linux
// +build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux futex backend. FUTEX_WAIT_PRIVATE atomically re-checks the word
// against old in the kernel before sleeping, which closes the lost-wakeup
// window without any user-space queueing. The calling OS thread blocks; the
// Go scheduler spins up replacements as needed.

package park

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	futexWaitPrivate = 0 | 128
	futexWakePrivate = 1 | 128
)

// FutexSupported reports that kernel futex parking is available.
func FutexSupported() bool { return true }

// FutexWait sleeps until a wake on word, a value mismatch, or a spurious
// kernel wakeup. A mismatch (EAGAIN) and an interrupt (EINTR) both return
// nil: the caller re-checks its condition in a loop regardless.
func FutexWait(word *uint32, old uint32) error {
	_, _, e := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(word)),
		futexWaitPrivate,
		uintptr(old),
		0, 0, 0)
	switch e {
	case 0, unix.EAGAIN, unix.EINTR:
		return nil
	}
	return e
}

// FutexWaitTimeout is FutexWait bounded by d. Returns false on timeout.
func FutexWaitTimeout(word *uint32, old uint32, d time.Duration) (woke bool, err error) {
	ts := unix.NsecToTimespec(d.Nanoseconds())
	_, _, e := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(word)),
		futexWaitPrivate,
		uintptr(old),
		uintptr(unsafe.Pointer(&ts)),
		0, 0)
	switch e {
	case 0, unix.EAGAIN, unix.EINTR:
		return true, nil
	case unix.ETIMEDOUT:
		return false, nil
	}
	return false, e
}

// FutexWake wakes up to n threads sleeping on word and returns the number
// actually woken.
func FutexWake(word *uint32, n int) int {
	woken, _, e := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(word)),
		futexWakePrivate,
		uintptr(n),
		0, 0, 0)
	if e != 0 {
		return 0
	}
	return int(woken)
}
