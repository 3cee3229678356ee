// Package cstringtest provides a Go-heap allocator that records every
// allocation, for testing code written against cstring.Allocator.
package cstringtest

import (
	"fmt"
	"unsafe"
)

// Allocator is a counting cstring.Allocator backed by Go memory.
// Blocks are kept reachable until freed so pointers stored inside other
// blocks stay valid. FailAfter, when non-negative, makes every allocation
// after that many successful ones return nil.
type Allocator struct {
	FailAfter int

	live   map[unsafe.Pointer][]uint64
	allocs int
	frees  int
}

// New returns an allocator that never fails.
func New() *Allocator {
	return &Allocator{FailAfter: -1, live: make(map[unsafe.Pointer][]uint64)}
}

// Alloc returns a zeroed, 8-byte aligned block of at least size bytes.
func (a *Allocator) Alloc(size uintptr) unsafe.Pointer {
	if a.FailAfter >= 0 && a.allocs >= a.FailAfter {
		return nil
	}
	if size == 0 {
		size = 1
	}
	block := make([]uint64, (size+7)/8)
	p := unsafe.Pointer(&block[0])
	a.live[p] = block
	a.allocs++
	return p
}

// Free releases a block returned by Alloc. Freeing anything else panics,
// which makes double frees show up as test failures.
func (a *Allocator) Free(p unsafe.Pointer) {
	if _, ok := a.live[p]; !ok {
		panic(fmt.Sprintf("cstringtest: free of unknown pointer %p", p))
	}
	delete(a.live, p)
	a.frees++
}

// Allocs returns the number of successful allocations.
func (a *Allocator) Allocs() int { return a.allocs }

// Frees returns the number of blocks released.
func (a *Allocator) Frees() int { return a.frees }

// Live returns the number of blocks still outstanding.
func (a *Allocator) Live() int { return len(a.live) }

// CString places s plus a terminating NUL in Go memory and returns a
// pointer to it, for feeding native-style arguments into code under test.
// The memory is not tracked by any Allocator.
func CString(s string) unsafe.Pointer {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return unsafe.Pointer(&b[0])
}
