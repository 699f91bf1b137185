package fence

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/atomicwait/api"
)

func TestConfined(t *testing.T) {
	g := GranuleSize
	cases := []struct {
		name string
		objs []Span
		want bool
	}{
		{"single small", []Span{{Base: 4 * g, Size: 8}}, true},
		{"fills granule", []Span{{Base: 4 * g, Size: g}}, true},
		{"straddles boundary", []Span{{Base: 4*g + g/2, Size: g}}, false},
		{"two in one granule", []Span{{Base: 4 * g, Size: 8}, {Base: 4*g + 16, Size: 8}}, true},
		{"two granules apart", []Span{{Base: 4 * g, Size: 8}, {Base: 6 * g, Size: 8}}, false},
		{"last byte in granule", []Span{{Base: 5*g - 1, Size: 1}}, true},
		{"one past boundary", []Span{{Base: 5*g - 1, Size: 2}}, false},
		{"zero-size ignored", []Span{{Base: 4 * g, Size: 8}, {Base: 9 * g, Size: 0}}, true},
		{"all zero-size", []Span{{Base: 4 * g, Size: 0}}, false},
	}
	for _, c := range cases {
		if got := confined(c.objs); got != c.want {
			t.Errorf("%s: confined = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestScoped_ElisionAndPromotion(t *testing.T) {
	var x uint64
	before := Snapshot()

	Scoped(api.Release, Object(&x))
	if s := Snapshot(); s.Elided != before.Elided+1 {
		t.Fatalf("single confined object not elided: %+v", s)
	}

	// Force non-confinement with raw spans granules apart.
	Scoped(api.Release, Span{Base: GranuleSize, Size: 8}, Span{Base: 4 * GranuleSize, Size: 8})
	if s := Snapshot(); s.Promoted != before.Promoted+1 {
		t.Fatalf("straddling spans not promoted: %+v", s)
	}
}

func TestScoped_EmptySetIsFullFence(t *testing.T) {
	before := Snapshot()
	Scoped(api.SeqCst)
	if s := Snapshot(); s.Promoted != before.Promoted+1 {
		t.Fatalf("empty object set must promote to a full fence: %+v", s)
	}
}

func TestScoped_RelaxedIsNoEffect(t *testing.T) {
	before := Snapshot()
	var x uint32
	Scoped(api.Relaxed, Object(&x))
	Full(api.Relaxed)
	if s := Snapshot(); s != before {
		t.Fatalf("relaxed fence changed dispatch counters: %+v != %+v", s, before)
	}
}

func TestForceFull(t *testing.T) {
	defer ForceFull(false)
	ForceFull(true)

	var x uint32
	before := Snapshot()
	Scoped(api.Acquire, Object(&x))
	if s := Snapshot(); s.Promoted != before.Promoted+1 {
		t.Fatal("ForceFull(true) did not promote a confined scoped fence")
	}

	ForceFull(false)
	before = Snapshot()
	Scoped(api.Acquire, Object(&x))
	if s := Snapshot(); s.Elided != before.Elided+1 {
		t.Fatal("ForceFull(false) did not restore elision")
	}
}

// Publisher/observer pair following the canonical two-thread example: the
// writer fences x after a plain write, then publishes through an atomic
// store; the reader spins on the atomic, fences x, and must see the write.
func TestScoped_PublishObserve(t *testing.T) {
	var x uint64
	var gate uint32

	go func() {
		x = 42
		Scoped(api.Release, Object(&x))
		atomic.StoreUint32(&gate, 1)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadUint32(&gate) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("publisher never stored the gate")
		}
	}
	Scoped(api.Acquire, Object(&x))
	if x != 42 {
		t.Fatalf("x = %d after acquire fence, want 42", x)
	}
}

func TestObjectSpan(t *testing.T) {
	var x struct {
		a uint64
		b uint64
	}
	s := Object(&x)
	if s.Size != 16 {
		t.Fatalf("Object span size = %d, want 16", s.Size)
	}
	if s.Base == 0 {
		t.Fatal("Object span base is zero")
	}
}

func BenchmarkScoped_Elided(b *testing.B) {
	var x uint64
	sp := Object(&x)
	for i := 0; i < b.N; i++ {
		Scoped(api.Release, sp)
	}
}

func BenchmarkFull(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Full(api.SeqCst)
	}
}
