// File: internal/park/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable parking handle. One handle parks one goroutine once; handles are
// single-use so a stale Unpark can never leak a wakeup into a later wait.

package park

import "time"

// Handle parks the goroutine that owns it until another goroutine calls
// Unpark. Unpark is idempotent and never blocks; an Unpark that arrives
// before Park makes the Park return immediately.
type Handle struct {
	ch chan struct{}
}

// NewHandle allocates a fresh single-use handle.
func NewHandle() *Handle {
	return &Handle{ch: make(chan struct{}, 1)}
}

// Park blocks until Unpark.
func (h *Handle) Park() {
	<-h.ch
}

// ParkTimeout blocks until Unpark or the duration elapses. Returns false on
// timeout.
func (h *Handle) ParkTimeout(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-h.ch:
		return true
	case <-timer.C:
		return false
	}
}

// Unpark releases the parked goroutine, if any. Safe to call at most once
// per pending Park from any goroutine; extra calls are absorbed by the
// one-slot buffer.
func (h *Handle) Unpark() {
	select {
	case h.ch <- struct{}{}:
	default:
	}
}
