// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpurand

import (
	"runtime"
	"sync"
	"testing"
)

// TestCurrentProcessor ensures the processor affinity hint is always a
// non-negative number usable as a slot index source, including when queried
// from more goroutines than there are logical processors.
func TestCurrentProcessor(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if cpu := currentProcessor(); cpu < 0 {
			t.Fatalf("processor hint %d is negative", cpu)
		}
	}

	numQueriers := 2 * runtime.NumCPU()
	var wg sync.WaitGroup
	wg.Add(numQueriers)
	for i := 0; i < numQueriers; i++ {
		go func() {
			defer wg.Done()

			for j := 0; j < 1000; j++ {
				if cpu := currentProcessor(); cpu < 0 {
					t.Errorf("processor hint %d is negative", cpu)
					return
				}
			}
		}()
	}
	wg.Wait()
}
