// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpurand

import (
	"io"
	"runtime"
	"sync"
	"sync/atomic"
)

const (
	// cacheSize is the number of bytes of entropy buffered by each
	// processor cache.  The value is large enough to amortize entropy
	// source reads across many small requests while remaining small
	// enough to stay resident in per-core data caches.
	cacheSize = 4096

	// reqCacheLimit is the largest request, in bytes, that is served from
	// a processor cache.  Larger requests read the entropy source
	// directly so a single oversized request cannot drain an entire
	// cache that many smaller requests are drawing from.
	reqCacheLimit = cacheSize / 4
)

// byteCache is a single processor slot's buffer of entropy.  The position is
// the offset of the next unserved byte and every byte before it has already
// been handed out and zeroed.  All fields are protected by the mutex.
type byteCache struct {
	mtx sync.Mutex
	pos int
	buf [cacheSize]byte
}

// newByteCache returns a byte cache that is marked exhausted so the first
// request against it refills the buffer with fresh entropy.
func newByteCache() *byteCache {
	return &byteCache{pos: cacheSize}
}

// Generator is a cryptographically secure random number generator that
// amortizes reads of an underlying entropy source by serving small requests
// from per-CPU caches of buffered entropy.
//
// The processor a request is attributed to is only a hint to reduce lock
// contention: any goroutine may serve from any cache, serialized by that
// cache's mutex, so a stale or inaccurate hint costs throughput and never
// correctness.
//
// All methods are safe for concurrent access.
type Generator struct {
	src   Source
	slots []atomic.Pointer[byteCache]
}

// New returns a generator backed by the operating system CSPRNG with one
// lazily-allocated entropy cache slot per logical CPU.
func New() *Generator {
	return NewFromSource(osSource{})
}

// NewFromSource returns a generator that obtains entropy from the provided
// source with one lazily-allocated entropy cache slot per logical CPU.  The
// source must conform to the contract documented by [Source].
func NewFromSource(src Source) *Generator {
	return &Generator{
		src:   src,
		slots: make([]atomic.Pointer[byteCache], runtime.NumCPU()),
	}
}

// readSource fills p directly from the generator's entropy source.  A source
// failure is fatal and panics rather than allowing randomness quality to
// silently degrade.
func (g *Generator) readSource(p []byte) {
	if _, err := io.ReadFull(g.src, p); err != nil {
		panic("cpurand: entropy source failure: " + err.Error())
	}
}

// cache returns the byte cache for the provided slot index, lazily
// constructing it on first use.  Concurrent construction is resolved by a
// single compare-and-swap winner and every loser adopts the installed cache.
func (g *Generator) cache(idx int) *byteCache {
	slot := &g.slots[idx]
	c := slot.Load()
	if c == nil {
		c = newByteCache()
		if slot.CompareAndSwap(nil, c) {
			log.Tracef("Allocated %d-byte entropy cache for processor "+
				"slot %d", cacheSize, idx)
		} else {
			c = slot.Load()
		}
	}
	return c
}

// Read fills p with cryptographically secure random bytes that have never
// been served before.  Requests up to a quarter of the cache size are served
// from a per-CPU cache while larger requests read the entropy source
// directly without disturbing any cache.
//
// The returned error is always nil and the returned length is always len(p),
// which makes a generator usable anywhere an io.Reader is expected.  Read
// panics if the underlying source fails.
//
// This function is safe for concurrent access.
func (g *Generator) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) > reqCacheLimit {
		log.Tracef("Serving %d-byte request directly from the entropy "+
			"source", len(p))
		g.readSource(p)
		return len(p), nil
	}

	idx := currentProcessor() % len(g.slots)
	c := g.cache(idx)
	c.mtx.Lock()
	defer c.mtx.Unlock()

	// Refill the entire cache with fresh entropy once the remaining bytes
	// cannot satisfy the request.  Any unserved remainder is overwritten,
	// never reused.
	if c.pos+len(p) > cacheSize {
		log.Tracef("Refilling entropy cache for processor slot %d", idx)
		g.readSource(c.buf[:])
		c.pos = 0
	}

	// Advance the position before copying so a failure part way through
	// can never result in the same bytes being served twice.
	served := c.buf[c.pos : c.pos+len(p)]
	c.pos += len(p)
	copy(p, served)

	// Zero the served region only after the copy completes so the cache
	// never retains a second copy of entropy that has been handed out.
	for i := range served {
		served[i] = 0
	}
	return len(p), nil
}
