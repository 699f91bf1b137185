// File: waitnotify/wait.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic blocking wait over any api.Waitable location, plus the notify
// mirrors. The protocol is load-before-sleep: a waiter publishes itself
// (bucket entry or kernel futex) and re-checks the value before actually
// sleeping, so a concurrent write plus notify can never be lost.
//
// A-B-A caveat: Wait observes point-in-time equality, not change events. A
// value that leaves old and returns before the re-check keeps the waiter
// blocked; that is the documented contract, not a defect.

package waitnotify

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/momentics/atomicwait/api"
	"github.com/momentics/atomicwait/internal/park"
)

// Wait is WaitExplicit with the default (strictest) observation order.
func Wait[T comparable](t *Table, loc api.Waitable[T], old T) {
	WaitExplicit(t, loc, old, api.OrderDefault)
}

// WaitExplicit blocks the caller until the value at loc, observed with
// order, differs from old, or until a permitted spurious wakeup. If the
// value already differs, it returns without blocking. order must be valid
// for a pure read (not Release, not AcqRel); violating that is a contract
// breach checked only by atomicdebug builds of the atomics package.
func WaitExplicit[T comparable](t *Table, loc api.Waitable[T], old T, order api.MemOrder) {
	t.stats.waits.Add(1)
	if loc.Observe(order) != old || t.isClosed() {
		t.stats.immediate.Add(1)
		return
	}
	if t.spin > 0 && spinObserve(t, loc, old, order) {
		return
	}
	if w, ok := any(loc).(api.Word); ok && t.useFutex {
		waitFutex(t, loc, w.Word(), old, order)
		return
	}
	waitTable(t, loc, old, order)
}

// WaitTimeout is Wait bounded by d. It returns true if it returned because
// the observed value differed from old, and false if the deadline elapsed
// first. A zero or negative duration degenerates to a single check.
func WaitTimeout[T comparable](t *Table, loc api.Waitable[T], old T, order api.MemOrder, d time.Duration) bool {
	t.stats.waits.Add(1)
	if loc.Observe(order) != old || t.isClosed() {
		t.stats.immediate.Add(1)
		return true
	}
	deadline := time.Now().Add(d)
	if w, ok := any(loc).(api.Word); ok && t.useFutex {
		return waitFutexTimeout(t, loc, w.Word(), old, order, deadline)
	}
	return waitTableTimeout(t, loc, old, order, deadline)
}

// NotifyOne unblocks at most one waiter blocked on loc.
func NotifyOne[T comparable](t *Table, loc api.Waitable[T]) {
	t.NotifyOne(loc.Addr())
}

// NotifyAll unblocks every waiter blocked on loc.
func NotifyAll[T comparable](t *Table, loc api.Waitable[T]) {
	t.NotifyAll(loc.Addr())
}

// spinObserve burns a bounded number of re-reads before committing to
// park. Worth it only when notifies arrive within a scheduling quantum.
func spinObserve[T comparable](t *Table, loc api.Waitable[T], old T, order api.MemOrder) bool {
	for i := 0; i < t.spin; i++ {
		if loc.Observe(order) != old {
			t.stats.spins.Add(1)
			return true
		}
		runtime.Gosched()
	}
	return false
}

func waitFutex[T comparable](t *Table, loc api.Waitable[T], word *uint32, old T, order api.MemOrder) {
	for {
		cur := atomic.LoadUint32(word)
		if loc.Observe(order) != old || t.isClosed() {
			return
		}
		if !t.futexEnter(word) {
			return
		}
		t.stats.parks.Add(1)
		// The kernel re-checks *word == cur before sleeping, closing the
		// window between the observation above and the sleep.
		_ = park.FutexWait(word, cur)
		t.futexExit(word)
		if loc.Observe(order) != old || t.isClosed() {
			return
		}
		t.stats.spurious.Add(1)
	}
}

func waitFutexTimeout[T comparable](t *Table, loc api.Waitable[T], word *uint32, old T, order api.MemOrder, deadline time.Time) bool {
	for {
		cur := atomic.LoadUint32(word)
		if loc.Observe(order) != old || t.isClosed() {
			return true
		}
		left := time.Until(deadline)
		if left <= 0 {
			t.stats.timeouts.Add(1)
			return false
		}
		if !t.futexEnter(word) {
			return true
		}
		t.stats.parks.Add(1)
		woke, err := park.FutexWaitTimeout(word, cur, left)
		t.futexExit(word)
		if loc.Observe(order) != old || t.isClosed() {
			return true
		}
		if err == nil && !woke {
			t.stats.timeouts.Add(1)
			return false
		}
		t.stats.spurious.Add(1)
	}
}

func waitTable[T comparable](t *Table, loc api.Waitable[T], old T, order api.MemOrder) {
	addr := loc.Addr()
	b := t.bucketFor(addr)
	for {
		w := &waiter{addr: addr, h: park.NewHandle()}
		b.mu.Lock()
		b.waiters.Add(w)
		if loc.Observe(order) != old || t.isClosed() {
			// The entry was never visible outside this critical section.
			b.removeWaiter(w)
			b.mu.Unlock()
			return
		}
		b.mu.Unlock()
		t.stats.parks.Add(1)
		w.h.Park()
		if loc.Observe(order) != old || t.isClosed() {
			return
		}
		t.stats.spurious.Add(1)
	}
}

func waitTableTimeout[T comparable](t *Table, loc api.Waitable[T], old T, order api.MemOrder, deadline time.Time) bool {
	addr := loc.Addr()
	b := t.bucketFor(addr)
	for {
		w := &waiter{addr: addr, h: park.NewHandle()}
		b.mu.Lock()
		b.waiters.Add(w)
		if loc.Observe(order) != old || t.isClosed() {
			// The entry was never visible outside this critical section.
			b.removeWaiter(w)
			b.mu.Unlock()
			return true
		}
		b.mu.Unlock()
		left := time.Until(deadline)
		if left <= 0 {
			return expireTimed(t, b, w, loc, old, order)
		}
		t.stats.parks.Add(1)
		if !w.h.ParkTimeout(left) {
			return expireTimed(t, b, w, loc, old, order)
		}
		if loc.Observe(order) != old || t.isClosed() {
			return true
		}
		t.stats.spurious.Add(1)
	}
}

// expireTimed finishes a timed wait whose deadline has passed. The entry is
// removed from its bucket, so expired waiters never accumulate as
// tombstones. If a notifier claimed w first, its wakeup landed on a waiter
// that was already leaving; forward it so another waiter on the same
// address still receives it.
func expireTimed[T comparable](t *Table, b *bucket, w *waiter, loc api.Waitable[T], old T, order api.MemOrder) bool {
	own := w.claim()
	b.mu.Lock()
	b.removeWaiter(w)
	b.mu.Unlock()
	if !own {
		t.notifyAddr(w.addr, 1)
	}
	if loc.Observe(order) != old {
		return true
	}
	t.stats.timeouts.Add(1)
	return false
}
