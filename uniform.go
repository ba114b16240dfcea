// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Uniform random algorithms modified from the Go math/rand/v2 package with
// the following license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package cpurand

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"math/bits"
	"time"
)

// Uint32 returns a uniform random uint32.
func (g *Generator) Uint32() uint32 {
	b := make([]byte, 4)
	g.Read(b)
	return binary.LittleEndian.Uint32(b)
}

// Uint64 returns a uniform random uint64.
func (g *Generator) Uint64() uint64 {
	b := make([]byte, 8)
	g.Read(b)
	return binary.LittleEndian.Uint64(b)
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func (g *Generator) Uint32N(n uint32) uint32 {
	if n == 0 {
		panic("cpurand: invalid argument to Uint32N")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return uint32(g.Uint64()) & (n - 1)
	}

	// This is the 32-bit output variant of the multiply-shift reduction
	// implemented by Uint64N below, written out in terms of 32-bit halves
	// so that 32-bit systems use direct hardware instructions while still
	// preserving the property that the unbiasing loop almost never runs.
	x := g.Uint64()
	lo1a, lo0 := bits.Mul32(uint32(x), n)
	hi, lo1b := bits.Mul32(uint32(x>>32), n)
	lo1, c := bits.Add32(lo1a, lo1b, 0)
	hi += c
	if lo1 == 0 && lo0 < n {
		n64 := uint64(n)
		thresh := uint32(-n64 % n64)
		for lo1 == 0 && lo0 < thresh {
			x := g.Uint64()
			lo1a, lo0 = bits.Mul32(uint32(x), n)
			hi, lo1b = bits.Mul32(uint32(x>>32), n)
			lo1, c = bits.Add32(lo1a, lo1b, 0)
			hi += c
		}
	}
	return hi
}

const is32bit = ^uint(0)>>32 == 0

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func (g *Generator) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("cpurand: invalid argument to Uint64N")
	}
	if is32bit && uint64(uint32(n)) == n {
		return uint64(g.Uint32N(uint32(n)))
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return g.Uint64() & (n - 1)
	}

	// Scale a uniform uint64 into [0,n) by taking the high 64 bits of the
	// 128-bit product x*n, which simulates an arbitrary precision
	// x * (n/2⁶⁴).  Since n does not divide 2⁶⁴, some outputs would have
	// one extra preimage, so samples whose low product half falls below
	// 2⁶⁴ mod n are rejected to restore exact uniformity.  The expensive
	// mod only happens when lo < n, which is nearly never for small n.
	//
	// See:
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	// https://lemire.me/blog/2016/06/30/fast-random-shuffling
	hi, lo := bits.Mul64(g.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(g.Uint64(), n)
		}
	}
	return hi
}

// Int32 returns a uniform random 31-bit non-negative integer as an int32 in
// the half-open range [0, 2³¹-1).  Note that the maximum int32 value is
// excluded: a draw that equals it after masking the sign bit is rejected and
// redrawn, which leaves the remaining values exactly uniform.
func (g *Generator) Int32() int32 {
	for {
		v := g.Uint32() & 0x7FFFFFFF
		if v != 0x7FFFFFFF {
			return int32(v)
		}
	}
}

// Int32N returns, as an int32, a random non-negative integer in [0,n)
// without modulo bias.  An n of zero describes an empty range and returns 0
// without consuming any entropy.
// Panics if n < 0.
func (g *Generator) Int32N(n int32) int32 {
	if n < 0 {
		panic("cpurand: invalid argument to Int32N")
	}
	return g.Int32Range(0, n)
}

// Int32Range returns a uniform random int32 in the half-open range
// [minVal,maxVal) using masked rejection sampling: candidate draws are
// reduced with the smallest bit mask that covers the range size, so no
// modulo bias is ever introduced and fewer than half of all candidates are
// rejected.  When minVal equals maxVal the range is empty and minVal is
// returned without consuming any entropy.
// Panics if minVal > maxVal.
func (g *Generator) Int32Range(minVal, maxVal int32) int32 {
	if minVal > maxVal {
		panic("cpurand: invalid argument to Int32Range")
	}

	// The unsigned difference always fits in a uint32 even when the
	// signed subtraction would overflow.  A difference below two means at
	// most one value is representable, so no entropy is needed.
	rng := uint32(maxVal) - uint32(minVal)
	if rng < 2 {
		return minVal
	}
	rng--

	mask := ^uint32(0) >> bits.LeadingZeros32(rng)
	for {
		if v := g.Uint32() & mask; v <= rng {
			return int32(uint32(minVal) + v)
		}
	}
}

// Int64 returns a random 63-bit non-negative integer as an int64 without
// modulo bias.
func (g *Generator) Int64() int64 {
	return int64(g.Uint64() & 0x7FFFFFFF_FFFFFFFF)
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (g *Generator) Int64N(n int64) int64 {
	if n <= 0 {
		panic("cpurand: invalid argument to Int64N")
	}
	return int64(g.Uint64N(uint64(n)))
}

// Int returns a non-negative integer without bias.
func (g *Generator) Int() int {
	return int(uint(g.Uint64()) << 1 >> 1)
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic("cpurand: invalid argument to IntN")
	}
	return int(g.Uint64N(uint64(n)))
}

// UintN returns, as a uint, a random integer in [0,n) without modulo bias.
// Panics if n == 0.
func (g *Generator) UintN(n uint) uint {
	if n == 0 {
		panic("cpurand: invalid argument to UintN")
	}
	return uint(g.Uint64N(uint64(n)))
}

// Float64 returns a uniform random float64 in [0,1).  The top 53 bits of a
// uniform uint64 are scaled by 2⁻⁵³, so results carry full double precision
// mantissa entropy and 1.0 is never produced.
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) * (1.0 / (1 << 53))
}

// Float32 returns a uniform random float32 in [0,1).  The top 24 bits of a
// uniform uint32 are scaled by 2⁻²⁴, so results carry full single precision
// mantissa entropy and 1.0 is never produced.
func (g *Generator) Float32() float32 {
	return float32(g.Uint32()>>8) * (1.0 / (1 << 24))
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (g *Generator) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("cpurand: invalid argument to Duration")
	}
	return time.Duration(g.Uint64N(uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("cpurand: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := n - 1; i > 0; i-- {
		j := int(g.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}

// BigInt returns a uniform random value in [0,maxVal).
// Panics if maxVal <= 0.
func (g *Generator) BigInt(maxVal *big.Int) *big.Int {
	// Will never error with a reader that cannot fail.
	n, _ := rand.Int(g, maxVal)
	return n
}
