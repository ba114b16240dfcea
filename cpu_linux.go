// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package cpurand

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// currentProcessor returns the index of the logical CPU the calling thread is
// executing on per getcpu(2).  The goroutine may be rescheduled onto another
// CPU at any moment and the reported index may exceed the slot count a
// generator was constructed with, so callers must treat the result as an
// affinity hint and reduce it modulo their own slot count.  Index zero is
// used when the kernel cannot report a processor.
//
// golang.org/x/sys/unix provides no wrapper for getcpu, so the syscall is
// issued directly.  getcpu never blocks, which permits the raw variant that
// skips runtime scheduler coordination.
func currentProcessor() int {
	// The kernel writes the processor index as a 32-bit unsigned integer.
	// The NUMA node and legacy cache arguments are unused and may be null.
	var cpu uint32
	_, _, errno := unix.RawSyscall(unix.SYS_GETCPU,
		uintptr(unsafe.Pointer(&cpu)), 0, 0)
	if errno != 0 {
		return 0
	}
	return int(cpu)
}
