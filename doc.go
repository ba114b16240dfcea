// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cpurand implements a concurrency-friendly CSPRNG that amortizes
// reads of the operating system entropy source with per-CPU byte caches.  The
// generator can be used to obtain random bytes as well as generating
// uniformly-distributed integers and floats in a full or limited range.
//
// Each generator shards buffered entropy across one cache per logical CPU,
// with each cache guarded by its own mutex, so concurrent callers running on
// distinct CPUs make progress without contending on a single global lock.
// Bytes handed to a caller are zeroed from the backing cache under the same
// lock, so entropy that has already been served is never readable from the
// cache memory again.
//
// The default global generator is safe for concurrent access and never
// errors.  Generators backed by a caller-provided entropy source can be
// created by calling NewFromSource.
//
// All byte-to-integer decoding performed by this package is little endian.
package cpurand
