package editline

import (
	"errors"
	"fmt"
	"syscall"

	"editline/bridge"
	"editline/cstring"
)

var (
	// ErrInvalidString is wrapped when a string cannot be passed to the
	// native library, usually because it contains a NUL byte.
	ErrInvalidString = cstring.ErrUnencodable

	// ErrInvalidKey is wrapped by ParseKey errors.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNoKeySlots is wrapped by BindKey when every native key
	// trampoline is already bound to a different key.
	ErrNoKeySlots = bridge.ErrNoKeySlots
)

// HistoryError reports a failed history read or write.
type HistoryError struct {
	Op   string // "read" or "write"
	Path string
	Code int // status returned by libeditline, 0 if the call was not made
	Err  error
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("%s history %s: %v", e.Op, e.Path, e.Err)
}

func (e *HistoryError) Unwrap() error {
	return e.Err
}

// historyResult turns a history call's outcome into an error. libeditline
// returns 0 on success and an errno value otherwise.
func historyResult(op, path string, rc int, err error) error {
	if err != nil {
		return &HistoryError{Op: op, Path: path, Err: err}
	}
	if rc == 0 {
		return nil
	}
	herr := &HistoryError{Op: op, Path: path, Code: rc}
	if rc > 0 {
		herr.Err = syscall.Errno(rc)
	} else {
		herr.Err = fmt.Errorf("libeditline status %d", rc)
	}
	return herr
}
