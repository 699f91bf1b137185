// File: waitnotify/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package waitnotify implements the process-wide blocking service behind
// Flag.Wait and the generic Wait/Notify free functions: a fixed table of
// independently locked buckets, hashed by location address, each owning a
// FIFO of parked waiter handles. On Linux, locations that expose a 32-bit
// storage word park directly on a kernel futex instead.
//
// The wait contract is the futex contract: a waiter may wake without any
// notify (spurious wakeup), and a value that changes away from the old
// value and back again is indistinguishable from no change. Callers always
// re-check their condition in a loop; Wait does that internally against the
// single old value it was given.
package waitnotify
