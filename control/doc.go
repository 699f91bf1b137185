// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration control, and debug introspection for the
// atomicwait library.
//
// Provides concurrent-safe state handling primitives including:
//   - Metrics registry with JSON snapshot export
//   - Debug hooks and probe registration for wait tables and fences
//   - Config store with reload listeners (conservative fence forcing)
//
// Nothing in this package sits on a hot path; the primitives it observes
// publish lock-free counters the probes merely read.
package control
