// File: atomics/nocopy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomics

// noCopy makes `go vet -copylocks` flag values of the embedding type that
// are copied after first use. A Flag's address is its wait/notify identity,
// so a copy would be a second, unrelated location that merely starts with
// the same bit.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
