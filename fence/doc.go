// File: fence/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package fence implements object-scoped memory fences: a fence whose
// ordering effect is restricted to an explicitly named set of objects.
// Operations on locations outside the named set are unsequenced with
// respect to the fence; they gain no ordering, not merely weaker ordering.
//
// When every named object provably fits inside one cache-coherence granule
// the hardware already keeps the granule coherent, so the fence degrades to
// a pure code-motion barrier that emits no synchronizing operation. When
// confinement cannot be shown, the call promotes to a full unscoped fence,
// which is always correct and always available directly as Full.
package fence
