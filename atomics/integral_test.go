package atomics

import (
	"sync"
	"testing"

	"github.com/momentics/atomicwait/api"
)

func TestUint32_Basics(t *testing.T) {
	var u Uint32
	if u.Load() != 0 {
		t.Fatal("zero value not 0")
	}
	u.Store(7)
	if got := u.SwapExplicit(9, api.AcqRel); got != 7 {
		t.Fatalf("Swap returned %d, want 7", got)
	}
	if !u.CompareAndSwap(9, 10) {
		t.Fatal("CAS(9,10) failed")
	}
	if u.CompareAndSwapExplicit(9, 11, api.Relaxed) {
		t.Fatal("CAS(9,11) succeeded with current value 10")
	}
	if got := u.Add(5); got != 15 {
		t.Fatalf("Add returned %d, want 15", got)
	}
	if got := u.LoadExplicit(api.Acquire); got != 15 {
		t.Fatalf("LoadExplicit = %d, want 15", got)
	}
}

func TestUint64_Basics(t *testing.T) {
	var u Uint64
	u.StoreExplicit(1<<40, api.Release)
	if got := u.Load(); got != 1<<40 {
		t.Fatalf("Load = %d, want 2^40", got)
	}
	if got := u.AddExplicit(1, api.SeqCst); got != 1<<40+1 {
		t.Fatalf("Add = %d", got)
	}
	if got := u.Swap(3); got != 1<<40+1 {
		t.Fatalf("Swap returned %d", got)
	}
	if !u.CompareAndSwap(3, 4) {
		t.Fatal("CAS failed")
	}
}

func TestUint64_ConcurrentAdd(t *testing.T) {
	var u Uint64
	const goroutines = 8
	const iters = 50000
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				u.Add(1)
			}
		}()
	}
	wg.Wait()
	if got := u.Load(); got != goroutines*iters {
		t.Fatalf("sum = %d, want %d", got, goroutines*iters)
	}
}

func TestUint32_ObserveMatchesLoad(t *testing.T) {
	var u Uint32
	u.Store(42)
	if u.Observe(api.Acquire) != u.Load() {
		t.Fatal("Observe and Load disagree")
	}
}
