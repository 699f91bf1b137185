// File: atomics/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package atomics provides extensions to sync/atomic: a lock-free boolean
// Flag with ordered test/set/clear, and fixed-width integral wrappers
// (Uint32, Uint64) whose operations carry explicit memory-order annotations.
//
// All operations map to single sync/atomic instructions and are lock-free on
// every supported architecture. Order annotations are validated in builds
// tagged "atomicdebug"; release builds perform no checks (a forbidden order
// is a contract violation, not a runtime error).
package atomics
