package park

import (
	"testing"
	"time"
)

func TestHandle_UnparkBeforePark(t *testing.T) {
	h := NewHandle()
	h.Unpark()
	done := make(chan struct{})
	go func() {
		h.Park()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Park did not observe earlier Unpark")
	}
}

func TestHandle_UnparkIdempotent(t *testing.T) {
	h := NewHandle()
	h.Unpark()
	h.Unpark() // must not block or panic
	h.Park()
}

func TestHandle_ParkTimeout(t *testing.T) {
	h := NewHandle()
	start := time.Now()
	if h.ParkTimeout(20 * time.Millisecond) {
		t.Fatal("ParkTimeout reported wakeup without Unpark")
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatal("ParkTimeout returned before the deadline")
	}

	h2 := NewHandle()
	go func() {
		time.Sleep(10 * time.Millisecond)
		h2.Unpark()
	}()
	if !h2.ParkTimeout(2 * time.Second) {
		t.Fatal("ParkTimeout missed an Unpark")
	}
}
