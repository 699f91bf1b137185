// Copyright 2026 momentics@gmail.com
// License: Apache 2.0

// fence_publish_test.go — Publication pattern across packages: plain writes
// fenced by object scope, then released through a flag the consumer waits on.
package tests

import (
	"testing"
	"time"

	"github.com/momentics/atomicwait/api"
	"github.com/momentics/atomicwait/facade"
	"github.com/momentics/atomicwait/fence"
)

func TestScopedFence_PublishThroughFlag(t *testing.T) {
	var payload [4]uint64
	f := facade.NewFlag()

	go func() {
		for i := range payload {
			payload[i] = uint64(i + 1)
		}
		facade.Fence(api.Release, fence.Object(&payload))
		f.TestAndSet()
		facade.FlagNotifyOne(f)
	}()

	done := make(chan struct{})
	go func() {
		for !f.Test() {
			facade.FlagWait(f, false)
		}
		facade.Fence(api.Acquire, fence.Object(&payload))
		for i := range payload {
			if payload[i] != uint64(i+1) {
				t.Errorf("payload[%d] = %d after acquire fence", i, payload[i])
			}
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("consumer never observed the published payload")
	}
}
