// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpurand

import (
	"io"
	"math/big"
	"time"
)

// defaultRand is the shared generator backing the package-level functions.
// No additional locking is required since all Generator methods are safe
// for concurrent access.
var defaultRand = New()

// Reader returns the default generator as an io.Reader that serves small
// reads from per-processor entropy caches and large reads directly from the
// operating system entropy source.
// The returned Reader is safe for concurrent access.
func Reader() io.Reader {
	return defaultRand
}

// Read fills b with random bytes obtained from the default generator.
func Read(b []byte) {
	defaultRand.Read(b)
}

// Uint32 returns a uniform random uint32.
func Uint32() uint32 {
	return defaultRand.Uint32()
}

// Uint64 returns a uniform random uint64.
func Uint64() uint64 {
	return defaultRand.Uint64()
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint32N(n uint32) uint32 {
	return defaultRand.Uint32N(n)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint64N(n uint64) uint64 {
	return defaultRand.Uint64N(n)
}

// Int32 returns a uniform random 31-bit non-negative integer as an int32 in
// the half-open range [0, 2³¹-1).  The maximum int32 value is never
// returned.
func Int32() int32 {
	return defaultRand.Int32()
}

// Int32N returns, as an int32, a random non-negative integer in [0,n)
// without modulo bias.  An n of zero describes an empty range and returns 0
// without consuming any entropy.
// Panics if n < 0.
func Int32N(n int32) int32 {
	return defaultRand.Int32N(n)
}

// Int32Range returns a uniform random int32 in the half-open range
// [minVal,maxVal) without modulo bias.  When minVal equals maxVal the range
// is empty and minVal is returned without consuming any entropy.
// Panics if minVal > maxVal.
func Int32Range(minVal, maxVal int32) int32 {
	return defaultRand.Int32Range(minVal, maxVal)
}

// Int64 returns a random 63-bit non-negative integer as an int64 without
// modulo bias.
func Int64() int64 {
	return defaultRand.Int64()
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int64N(n int64) int64 {
	return defaultRand.Int64N(n)
}

// Int returns a non-negative integer without bias.
func Int() int {
	return defaultRand.Int()
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func IntN(n int) int {
	return defaultRand.IntN(n)
}

// UintN returns, as a uint, a random integer in [0,n) without modulo bias.
// Panics if n == 0.
func UintN(n uint) uint {
	return defaultRand.UintN(n)
}

// Float64 returns a uniform random float64 in [0,1) with full double
// precision mantissa entropy.
func Float64() float64 {
	return defaultRand.Float64()
}

// Float32 returns a uniform random float32 in [0,1) with full single
// precision mantissa entropy.
func Float32() float32 {
	return defaultRand.Float32()
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	return defaultRand.Duration(n)
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	defaultRand.Shuffle(n, swap)
}

// ShuffleSlice randomizes the order of all elements in s.
func ShuffleSlice[S ~[]E, E any](s S) {
	defaultRand.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// BigInt returns a uniform random value in [0,maxVal).
// Panics if maxVal <= 0.
func BigInt(maxVal *big.Int) *big.Int {
	return defaultRand.BigInt(maxVal)
}
