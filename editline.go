// Package editline binds libeditline, a small readline-compatible line
// editor, for use from Go.
//
// The library keeps all of its state in process-wide globals and is not
// safe for concurrent use. Drive it from a single goroutine, and register
// callbacks and key bindings before the first call to ReadLine.
//
// Callbacks registered here run on the C stack of a libeditline call. A
// panic inside one is recovered and logged through the logger given to
// SetLogger, and the call falls back to "no result".
package editline

import (
	"log/slog"

	"editline/bridge"
)

// library is the part of libeditline this package drives.
type library interface {
	ReadLine(prompt string) (string, bool)
	LineBuffer() (string, bool)
	ReadHistory(path string) (int, error)
	WriteHistory(path string) (int, error)
	AddHistory(line string) error
	BindKey(code int, meta bool, slot int)
	InstallListPossib()
	InstallComplete()
}

// SetLogger sets the logger used to report panics recovered from
// callbacks. A nil logger discards them, which is the default.
func SetLogger(l *slog.Logger) {
	bridge.SetLogger(l)
}

// ReadLine shows prompt and lets the user edit a line. It returns false
// at end of input (for example after a key handler returns EOF) and
// ("", true) for an empty line. A prompt holding a NUL byte, or a line
// that is not valid UTF-8, also reports false.
func ReadLine(prompt string) (string, bool) {
	return lib.ReadLine(prompt)
}

// LineBuffer returns the line currently being edited. It is only
// meaningful while ReadLine is running, that is from inside a key
// handler or completion callback.
func LineBuffer() (string, bool) {
	return lib.LineBuffer()
}

// AddHistory appends line to the in-memory history. libeditline reports
// nothing back; a line holding a NUL byte is silently ignored.
func AddHistory(line string) {
	_ = lib.AddHistory(line)
}

// ReadHistory loads history from path.
func ReadHistory(path string) error {
	rc, err := lib.ReadHistory(path)
	return historyResult("read", path, rc, err)
}

// WriteHistory saves history to path.
func WriteHistory(path string) error {
	rc, err := lib.WriteHistory(path)
	return historyResult("write", path, rc, err)
}

// ListFunc returns the completion candidates for a partially typed word.
type ListFunc func(word string) []string

// CompleteFunc returns the text to insert after word. It reports false
// when there is nothing to insert.
type CompleteFunc func(word string) (string, bool)

// SetListPossib registers fn as the source of candidates libeditline
// lists when completion is ambiguous. A later call replaces fn.
func SetListPossib(fn ListFunc) {
	if fn == nil {
		panic("editline: SetListPossib with nil function")
	}
	bridge.SetListPossib(bridge.ListFunc(fn))
	lib.InstallListPossib()
}

// SetComplete registers fn as the word completer. A later call replaces
// fn.
func SetComplete(fn CompleteFunc) {
	if fn == nil {
		panic("editline: SetComplete with nil function")
	}
	bridge.SetComplete(bridge.CompleteFunc(fn))
	lib.InstallComplete()
}
