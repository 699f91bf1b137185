// File: fence/span.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Spans describe the objects a scoped fence covers. A Span carries address
// and size only; the fence never reads or writes through it.

package fence

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// GranuleSize is the cache-coherence granule the elision check compares
// against. It follows the architecture's cache-line size as reported by
// x/sys/cpu padding.
const GranuleSize = uintptr(unsafe.Sizeof(cpu.CacheLinePad{}))

// Span names one object for a scoped fence: a half-open address range
// [Base, Base+Size).
type Span struct {
	Base uintptr
	Size uintptr
}

// Object builds the Span covering *p, sub-objects included.
func Object[T any](p *T) Span {
	return Span{
		Base: uintptr(unsafe.Pointer(p)),
		Size: unsafe.Sizeof(*p),
	}
}

// SpanOf builds a Span from a raw pointer and byte size, for callers that
// already carry unsafe addresses.
func SpanOf(p unsafe.Pointer, size uintptr) Span {
	return Span{Base: uintptr(p), Size: size}
}

// confined reports whether every span lies within a single coherence
// granule, i.e. the combined address range never crosses a granule
// boundary. Zero-size spans contribute nothing.
func confined(objs []Span) bool {
	var lo, hi uintptr
	first := true
	for _, s := range objs {
		if s.Size == 0 {
			continue
		}
		end := s.Base + s.Size
		if first {
			lo, hi = s.Base, end
			first = false
			continue
		}
		if s.Base < lo {
			lo = s.Base
		}
		if end > hi {
			hi = end
		}
	}
	if first {
		return false // nothing named; caller decides the degenerate case
	}
	return lo/GranuleSize == (hi-1)/GranuleSize
}
