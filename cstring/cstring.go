// Package cstring converts between Go strings and NUL-terminated C strings
// living in memory owned by a native allocator.
//
// Nothing here imports "C": the allocator is an interface so the same code
// runs against malloc/free in the native package and against a Go-heap
// fake in tests.
package cstring

import (
	"errors"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// Allocator hands out memory that the native side knows how to release.
// Alloc returns nil when no memory is available.
type Allocator interface {
	Alloc(size uintptr) unsafe.Pointer
	Free(p unsafe.Pointer)
}

// ErrUnencodable is returned when a Go string cannot be handed to the
// native side: it holds a NUL byte or the copy could not be allocated.
var ErrUnencodable = errors.New("string cannot be passed to libeditline")

// Valid reports whether s can be stored as a C string.
func Valid(s string) bool {
	return strings.IndexByte(s, 0) < 0
}

// Len returns the number of bytes before the terminating NUL.
func Len(p unsafe.Pointer) int {
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return n
}

// Decode copies the C string at p into a Go string. It fails on a nil
// pointer or bytes that are not valid UTF-8. The native buffer is left
// untouched and stays owned by whoever allocated it.
func Decode(p unsafe.Pointer) (string, bool) {
	if p == nil {
		return "", false
	}
	b := unsafe.Slice((*byte)(p), Len(p))
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// Dup copies s into a fresh NUL-terminated buffer from a. Ownership of the
// buffer passes to the caller. Dup fails without allocating when s holds
// a NUL byte, and fails when the allocator is out of memory.
func Dup(a Allocator, s string) (unsafe.Pointer, bool) {
	if !Valid(s) {
		return nil, false
	}
	p := a.Alloc(uintptr(len(s) + 1))
	if p == nil {
		return nil, false
	}
	buf := unsafe.Slice((*byte)(p), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return p, true
}
