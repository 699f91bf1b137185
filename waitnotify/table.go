// File: waitnotify/table.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide wait table. The layout follows the classic runtime semaphore
// design: a fixed prime-sized array of buckets hashed by address, each
// bucket independently locked and padded to its own cache line so that
// contention on one bucket never drags its neighbors along.
//
// Address collisions inside a bucket are harmless: the notifier matches
// waiters by exact address, so a colliding address can at worst delay a
// rotation of the bucket FIFO, never wake the wrong waiter. Cross-address
// wakeups therefore never happen on the table path; the contract still
// permits them, which keeps the futex path and future coalescing valid.

package waitnotify

import (
	"math"
	"runtime"
	"sync"
	"unsafe"

	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"

	"github.com/momentics/atomicwait/api"
	"github.com/momentics/atomicwait/atomics"
	"github.com/momentics/atomicwait/internal/park"
)

// Ensure compile-time interface compliance.
var _ api.Notifier = (*Table)(nil)

// tableSize is prime so bucket selection does not correlate with allocator
// address patterns.
const tableSize = 251

// waiter is one parked thread's entry in a bucket FIFO.
type waiter struct {
	addr uintptr
	h    *park.Handle

	// claimed flips exactly once, either by the notifier that unparks this
	// waiter or by the waiter itself when it abandons the queue (timeout,
	// value change seen under the bucket lock). A notifier that loses the
	// race skips the entry.
	claimed atomics.Uint32
}

func (w *waiter) claim() bool {
	return w.claimed.CompareAndSwap(0, 1)
}

type bucket struct {
	mu      sync.Mutex
	waiters *queue.Queue // of *waiter
	_       cpu.CacheLinePad
}

// futexSlot records one word with live kernel-parked waiters. The word
// pointer is threaded through from the waiter itself, never rebuilt from a
// bare address.
type futexSlot struct {
	word *uint32
	n    int
}

// Stats counts table activity. All counters are monotone.
type Stats struct {
	Waits     uint64 // Wait calls, including immediate returns
	Immediate uint64 // Wait calls satisfied by the first read
	Spins     uint64 // Wait calls satisfied while spinning, before parking
	Parks     uint64 // times a caller actually slept
	Spurious  uint64 // wakeups with the value still equal to old
	Notifies  uint64 // NotifyOne/NotifyAll calls
	Woken     uint64 // waiters actually unparked by notifies
	Timeouts  uint64 // WaitTimeout deadline expiries
}

type stats struct {
	waits     atomics.Uint64
	immediate atomics.Uint64
	spins     atomics.Uint64
	parks     atomics.Uint64
	spurious  atomics.Uint64
	notifies  atomics.Uint64
	woken     atomics.Uint64
	timeouts  atomics.Uint64
}

// Table is a process-wide wait/notify service. Independent Tables never
// interact; most programs use Default.
type Table struct {
	buckets  [tableSize]bucket
	useFutex bool
	spin     int
	closed   atomics.Uint32
	stats    stats

	// fmu guards futexed, the registry of words with waiters currently
	// parked (or about to park) in the kernel. The bucket FIFOs never see
	// those waiters, so Close and the notify path reach them through here.
	fmu     sync.Mutex
	futexed map[uintptr]*futexSlot
}

// Option configures a Table at construction.
type Option func(*Table)

// WithFutex enables or disables the kernel futex fast path for locations
// that expose a 32-bit word. Defaults to enabled where the platform
// supports it.
func WithFutex(enable bool) Option {
	return func(t *Table) { t.useFutex = enable && park.FutexSupported() }
}

// WithSpin sets how many times Wait re-reads the location, yielding between
// reads, before parking. Zero disables spinning.
func WithSpin(n int) Option {
	return func(t *Table) {
		if n >= 0 {
			t.spin = n
		}
	}
}

// NewTable builds a wait table.
func NewTable(opts ...Option) *Table {
	t := &Table{
		useFutex: park.FutexSupported(),
		futexed:  make(map[uintptr]*futexSlot),
	}
	for i := range t.buckets {
		t.buckets[i].waiters = queue.New()
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the lazily constructed process-wide table used by the
// facade helpers.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

func (t *Table) bucketFor(addr uintptr) *bucket {
	return &t.buckets[(addr>>3)%tableSize]
}

// futexEnter publishes word as kernel-parked so notifies and Close can
// reach the waiter. Returns false when the table is already closed; the
// caller must not park then.
func (t *Table) futexEnter(word *uint32) bool {
	addr := uintptr(unsafe.Pointer(word))
	t.fmu.Lock()
	if t.isClosed() {
		t.fmu.Unlock()
		return false
	}
	s := t.futexed[addr]
	if s == nil {
		s = &futexSlot{word: word}
		t.futexed[addr] = s
	}
	s.n++
	t.fmu.Unlock()
	return true
}

func (t *Table) futexExit(word *uint32) {
	addr := uintptr(unsafe.Pointer(word))
	t.fmu.Lock()
	if s := t.futexed[addr]; s != nil {
		s.n--
		if s.n == 0 {
			delete(t.futexed, addr)
		}
	}
	t.fmu.Unlock()
}

func (t *Table) futexWordFor(addr uintptr) *uint32 {
	t.fmu.Lock()
	s := t.futexed[addr]
	t.fmu.Unlock()
	if s == nil {
		return nil
	}
	return s.word
}

// NotifyOne unblocks at most one waiter parked on addr. Selection is
// unspecified; the table path picks FIFO-ish order. With no waiters the
// call is a correct no-op. Never blocks.
func (t *Table) NotifyOne(addr uintptr) {
	t.stats.notifies.Add(1)
	t.notifyAddr(addr, 1)
}

// NotifyAll unblocks every waiter parked on addr.
func (t *Table) NotifyAll(addr uintptr) {
	t.stats.notifies.Add(1)
	t.notifyAddr(addr, math.MaxInt32)
}

func (t *Table) notifyAddr(addr uintptr, limit int) {
	if t.useFutex {
		// The registry supplies the word pointer for any live futex waiter
		// on addr; locations that went down the table path are never in it.
		if word := t.futexWordFor(addr); word != nil {
			n := park.FutexWake(word, limit)
			t.stats.woken.Add(uint64(n))
		}
	}
	b := t.bucketFor(addr)
	b.mu.Lock()
	woken := b.wakeMatching(addr, limit)
	b.mu.Unlock()
	t.stats.woken.Add(uint64(woken))
}

// wakeMatching rotates the bucket FIFO once, unparking up to limit waiters
// whose address matches and dropping claimed entries. Relative order of
// surviving waiters is preserved. Caller holds b.mu.
func (b *bucket) wakeMatching(addr uintptr, limit int) int {
	woken := 0
	for n := b.waiters.Length(); n > 0; n-- {
		w := b.waiters.Remove().(*waiter)
		if w.addr == addr && woken < limit && w.claim() {
			w.h.Unpark()
			woken++
			continue
		}
		if w.claimed.Load() != 0 {
			continue // tombstone, drop
		}
		b.waiters.Add(w)
	}
	return woken
}

// removeWaiter drops w from the FIFO, preserving the order of the other
// entries. Caller holds b.mu.
func (b *bucket) removeWaiter(w *waiter) {
	for n := b.waiters.Length(); n > 0; n-- {
		e := b.waiters.Remove().(*waiter)
		if e != w {
			b.waiters.Add(e)
		}
	}
}

// Close wakes every waiter, table-parked and futex-parked alike, and makes
// all subsequent Wait calls return immediately. Intended for orderly
// shutdown; a Table holds no other resources. A second Close returns
// api.ErrTableClosed.
func (t *Table) Close() error {
	if !t.closed.CompareAndSwap(0, 1) {
		return api.ErrTableClosed
	}
	for i := range t.buckets {
		b := &t.buckets[i]
		b.mu.Lock()
		for b.waiters.Length() > 0 {
			w := b.waiters.Remove().(*waiter)
			if w.claim() {
				w.h.Unpark()
			}
		}
		b.mu.Unlock()
	}
	// Futex waiters deregister only after waking, so wake until the
	// registry drains. A waiter between registration and the syscall can
	// miss one round and is caught by the next; new registrations are
	// refused once closed is set.
	for {
		t.fmu.Lock()
		if len(t.futexed) == 0 {
			t.fmu.Unlock()
			return nil
		}
		words := make([]*uint32, 0, len(t.futexed))
		for _, s := range t.futexed {
			words = append(words, s.word)
		}
		t.fmu.Unlock()
		for _, w := range words {
			park.FutexWake(w, math.MaxInt32)
		}
		runtime.Gosched()
	}
}

func (t *Table) isClosed() bool {
	return t.closed.Load() != 0
}

// Snapshot returns current counter values.
func (t *Table) Snapshot() Stats {
	return Stats{
		Waits:     t.stats.waits.Load(),
		Immediate: t.stats.immediate.Load(),
		Spins:     t.stats.spins.Load(),
		Parks:     t.stats.parks.Load(),
		Spurious:  t.stats.spurious.Load(),
		Notifies:  t.stats.notifies.Load(),
		Woken:     t.stats.woken.Load(),
		Timeouts:  t.stats.timeouts.Load(),
	}
}
