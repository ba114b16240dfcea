// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpurand

import (
	cryptorand "crypto/rand"
)

// Source supplies raw cryptographically secure random bytes to a Generator.
// It is deliberately shaped like io.Reader so the stdlib crypto/rand reader
// and test doubles satisfy it without adapters.
//
// Implementations must fill p completely on success, must be safe for
// concurrent access, and must report failure rather than ever substituting
// weaker or predictable bytes.  A Generator treats any source failure as
// fatal.
type Source interface {
	Read(p []byte) (n int, err error)
}

// osSource obtains entropy directly from the operating system CSPRNG via
// crypto/rand.  It is the source backing generators created with New.
type osSource struct{}

func (osSource) Read(p []byte) (int, error) {
	return cryptorand.Read(p)
}
