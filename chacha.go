// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpurand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"sync"
	"time"

	"golang.org/x/crypto/chacha20"
)

const (
	maxCipherRead     = 4 * 1024 * 1024 // 4 MiB
	maxCipherDuration = 20 * time.Second
)

// nonce implements a 12-byte little endian counter suitable for use as an
// incrementing ChaCha20 nonce.
type nonce [chacha20.NonceSize]byte

func (n *nonce) inc() {
	n0 := binary.LittleEndian.Uint32(n[0:4])
	n1 := binary.LittleEndian.Uint32(n[4:8])
	n2 := binary.LittleEndian.Uint32(n[8:12])

	var carry uint32
	n0, carry = bits.Add32(n0, 1, carry)
	n1, carry = bits.Add32(n1, 0, carry)
	n2, _ = bits.Add32(n2, 0, carry)

	binary.LittleEndian.PutUint32(n[0:4], n0)
	binary.LittleEndian.PutUint32(n[4:8], n1)
	binary.LittleEndian.PutUint32(n[8:12], n2)
}

// ChaChaSource is a cryptographically secure pseudorandom entropy source
// backed by a ChaCha20 stream cipher.  The operating system entropy source
// is only read to key the cipher, and the cipher is rekeyed with fresh
// kernel entropy after 4 MiB of output or 20 seconds, whichever comes
// first.  It is a drop-in Source for callers whose read volume makes direct
// operating system reads too costly even after caching.
//
// ChaChaSource is safe for concurrent access.
type ChaChaSource struct {
	mtx    sync.Mutex
	key    [chacha20.KeySize]byte
	nonce  nonce
	cipher chacha20.Cipher
	read   int
	t      time.Time
}

// NewChaChaSource returns a seeded ChaChaSource.
func NewChaChaSource() (*ChaChaSource, error) {
	s := new(ChaChaSource)
	err := s.seed()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// seed reseeds the cipher with kernel and existing cipher entropy, if the
// cipher has been originally seeded.
// Only returns an error during initial seeding if a crypto/rand read errors.
func (s *ChaChaSource) seed() error {
	_, err := cryptorand.Read(s.key[:])
	if err != nil && s.t.IsZero() {
		return err
	}
	s.cipher.XORKeyStream(s.key[:], s.key[:])

	// never errors with correct key and nonce sizes
	cipher, _ := chacha20.NewUnauthenticatedCipher(s.key[:], s.nonce[:])
	s.cipher = *cipher
	s.nonce.inc()
	s.read = 0
	s.t = time.Now().Add(maxCipherDuration)
	return nil
}

// Read fills p with len(p) of cryptographically-secure random bytes.
// Read never errors.
//
// This method is safe for concurrent access.
func (s *ChaChaSource) Read(p []byte) (n int, err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if time.Now().After(s.t) {
		// Reseed the cipher.
		// The panic will never be hit except by calling the Read
		// method on the zero ChaChaSource value and if crypto/rand read
		// fails.  Creating the source properly with NewChaChaSource will
		// return nil and an error if the first seeding fails.
		// Later calls to seed will never return an error.
		if err := s.seed(); err != nil {
			panic(err)
		}
	}

	for s.read+len(p) > maxCipherRead {
		l := maxCipherRead - s.read
		s.cipher.XORKeyStream(p[:l], p[:l])
		s.seed()
		n += l
		p = p[l:]
	}
	s.cipher.XORKeyStream(p, p)
	s.read += len(p)
	n += len(p)
	return
}
