// Package bridge holds the Go callbacks the native line editor calls back
// into, and the decode → invoke → encode pipelines that sit behind the
// fixed-signature functions exported to C.
//
// The native callback signatures carry no user-data pointer, so every
// callback lives in a process-wide slot. Slots are written by
// registration and read on each native invocation. All access happens on
// the goroutine that drives the editor; nothing here takes a lock.
//
// Functions in this package run on a native call stack. They never let a
// panic from a Go callback escape: the panic is logged and the call
// resolves to the ABI's "no result" value instead. The one deliberate
// exception is reading a slot that was never set, which is a
// registration-order bug and terminates the process.
package bridge

import (
	"fmt"
	"log/slog"
	"unsafe"

	"editline/cstring"
)

// ListFunc returns the completion candidates for a partially typed word.
type ListFunc func(word string) []string

// CompleteFunc returns the text to insert after word, if any.
type CompleteFunc func(word string) (string, bool)

var (
	listPossib ListFunc
	complete   CompleteFunc

	logger = slog.New(slog.DiscardHandler)
)

// SetLogger sets the logger used to report recovered callback panics.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// SetListPossib fills the candidate-listing slot. A later call replaces
// the earlier function.
func SetListPossib(fn ListFunc) {
	listPossib = fn
}

// SetComplete fills the single-completion slot. A later call replaces the
// earlier function.
func SetComplete(fn CompleteFunc) {
	complete = fn
}

const ptrSize = unsafe.Sizeof(unsafe.Pointer(nil))

// ListPossib implements the native candidate-listing callback
// int (*)(char *word, char ***out).
//
// On success *out receives an array of accepted candidates allocated from
// a, each one a NUL-terminated string also allocated from a; the native
// library frees both. Every failure reports zero candidates and leaves
// *out untouched.
func ListPossib(a cstring.Allocator, word unsafe.Pointer, out *unsafe.Pointer) int {
	fn := listPossib
	if fn == nil {
		panic("bridge: candidate-listing callback invoked before SetListPossib")
	}

	w, ok := cstring.Decode(word)
	if !ok {
		return 0
	}

	candidates := guard[[]string]("list-candidates", nil, func() []string { return fn(w) })
	if len(candidates) == 0 {
		return 0
	}

	array := a.Alloc(uintptr(len(candidates)) * ptrSize)
	if array == nil {
		return 0
	}
	entries := unsafe.Slice((*unsafe.Pointer)(array), len(candidates))

	accepted := 0
	for _, c := range candidates {
		// A candidate that cannot be duplicated (interior NUL, allocation
		// failure) is dropped and neither side is told. Reporting partial
		// failure would need a channel the native signature does not have.
		p, ok := cstring.Dup(a, c)
		if !ok {
			continue
		}
		entries[accepted] = p
		accepted++
	}

	if accepted == 0 {
		a.Free(array)
		return 0
	}

	*out = array
	return accepted
}

// Complete implements the native single-completion callback
// char *(*)(char *word, int *found).
//
// The returned string is allocated from a and owned by the native
// library. *found is set to 1 only when a non-nil string is returned.
func Complete(a cstring.Allocator, word unsafe.Pointer, found *int32) unsafe.Pointer {
	fn := complete
	if fn == nil {
		panic("bridge: completion callback invoked before SetComplete")
	}

	w, ok := cstring.Decode(word)
	if !ok {
		return nil
	}

	type result struct {
		text string
		ok   bool
	}
	r := guard("complete", result{}, func() result {
		text, ok := fn(w)
		return result{text, ok}
	})
	if !r.ok {
		return nil
	}

	p, ok := cstring.Dup(a, r.text)
	if !ok {
		return nil
	}
	*found = 1
	return p
}

// guard runs fn and converts a panic into fallback.
func guard[T any](name string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("editline callback panicked",
				"callback", name,
				"panic", fmt.Sprint(r),
			)
			out = fallback
		}
	}()
	return fn()
}
