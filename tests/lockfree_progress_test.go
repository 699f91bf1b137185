// Copyright 2026 momentics@gmail.com
// License: Apache 2.0

// lockfree_progress_test.go — Bounded-progress checks: no flag or notify
// operation may be observed blocking on another thread's progress.
package tests

import (
	"sync"
	"testing"
	"time"

	"github.com/momentics/atomicwait/atomics"
	"github.com/momentics/atomicwait/waitnotify"
)

func TestFlagOps_NeverBlock(t *testing.T) {
	var f atomics.Flag
	tb := waitnotify.NewTable()
	const goroutines = 16
	const iters = 20000

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				switch (id + i) % 4 {
				case 0:
					f.TestAndSet()
				case 1:
					f.Clear()
				case 2:
					f.Test()
				case 3:
					tb.NotifyOne(f.Addr())
				}
			}
		}(g)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("a non-blocking operation appears stuck")
	}
}

func TestNotifyStorm_WithNoWaiters(t *testing.T) {
	tb := waitnotify.NewTable(waitnotify.WithFutex(false))
	var u atomics.Uint32

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50000; i++ {
				waitnotify.NotifyOne(tb, &u)
				waitnotify.NotifyAll(tb, &u)
			}
		}()
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("notify storm with no waiters did not complete")
	}
	if s := tb.Snapshot(); s.Woken != 0 {
		t.Fatalf("Woken = %d with no waiters ever parked", s.Woken)
	}
}

func TestMixedWaitersAndCallers_Drain(t *testing.T) {
	tb := waitnotify.NewTable(waitnotify.WithFutex(false))
	var u atomics.Uint32
	const waiters = 32

	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u.Load() == 0 {
				waitnotify.Wait(tb, &u, 0)
			}
		}()
	}

	// Let a mix of them park, then flip and wake in one motion.
	time.Sleep(20 * time.Millisecond)
	u.Store(1)
	waitnotify.NotifyAll(tb, &u)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("waiters left parked after the value change and NotifyAll")
	}
}
