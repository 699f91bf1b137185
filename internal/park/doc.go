// File: internal/park/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package park implements thread parking for the wait/notify subsystem.
// Two backends: a portable per-waiter handle built on a one-slot channel,
// and a Linux futex backend that parks directly on a 32-bit word in the
// kernel, bypassing the user-space wait table.
//
// Cross-platform: the futex backend is compiled in on Linux only; other
// platforms report it unsupported and the table falls back to handles.
package park
