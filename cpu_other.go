// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package cpurand

import (
	"sync/atomic"
)

// nextProcessor is the round-robin counter used to spread requests across
// cache slots on platforms without a cheap way to query the calling thread's
// logical CPU.
var nextProcessor atomic.Uint32

// currentProcessor returns a round-robin processor index on platforms that
// cannot report the calling thread's logical CPU.  Round robin loses the
// cache affinity a true processor id provides, but it still spreads lock
// acquisition across all slots, and correctness never depends on the hint.
// The counter is masked to keep the result non-negative across wraparound.
func currentProcessor() int {
	return int(nextProcessor.Add(1) & (1<<31 - 1))
}
