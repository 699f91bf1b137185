// Copyright 2026 momentics@gmail.com
// License: Apache 2.0

// handoff_integration_test.go — End-to-end ping-pong handoff through the
// facade: repeated set/notify/wait/clear cycles between two goroutines must
// neither deadlock nor drop a round.
package tests

import (
	"testing"
	"time"

	"github.com/momentics/atomicwait/facade"
)

func TestFlagHandoff_PingPong(t *testing.T) {
	f := facade.NewFlag()
	const rounds = 5000

	done := make(chan int, 1)
	go func() {
		completed := 0
		for i := 0; i < rounds; i++ {
			facade.FlagWait(f, false) // wait for set
			f.Clear()
			facade.FlagNotifyOne(f)
			completed++
		}
		done <- completed
	}()

	for i := 0; i < rounds; i++ {
		f.TestAndSet()
		facade.FlagNotifyOne(f)
		facade.FlagWait(f, true) // wait for clear
	}

	select {
	case completed := <-done:
		if completed != rounds {
			t.Fatalf("responder completed %d rounds, want %d", completed, rounds)
		}
	case <-time.After(60 * time.Second):
		t.Fatal("handoff deadlocked")
	}
}

func TestFlagHandoff_ManyConsumersOneProducer(t *testing.T) {
	f := facade.NewFlag()
	const consumers = 8

	results := make(chan struct{}, consumers)
	for i := 0; i < consumers; i++ {
		go func() {
			// Consumers with an outer condition loop, the documented usage:
			// spurious returns re-enter the wait.
			for !f.Test() {
				facade.FlagWait(f, false)
			}
			results <- struct{}{}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	f.TestAndSet()
	facade.FlagNotifyAll(f)

	for i := 0; i < consumers; i++ {
		select {
		case <-results:
		case <-time.After(10 * time.Second):
			t.Fatalf("consumer %d never observed the set flag", i)
		}
	}
}
