// Package term saves and restores the terminal mode around a libeditline
// session.
//
// libeditline switches the terminal to raw mode while ReadLine runs and
// switches it back when the call returns. A process that exits from a
// signal handler or a key handler mid-call skips that step, so callers
// save the mode up front and restore it on the way out.
package term

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrNotTerminal is returned by Save when the file is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// State holds the terminal mode captured by Save.
type State struct {
	fd       int
	original unix.Termios

	once sync.Once
	err  error
}

// Save captures the current mode of the terminal behind f.
func Save(f *os.File) (*State, error) {
	fd := int(f.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		if errors.Is(err, unix.ENOTTY) {
			return nil, fmt.Errorf("saving terminal mode of %s: %w", f.Name(), ErrNotTerminal)
		}
		return nil, fmt.Errorf("saving terminal mode of %s: %w", f.Name(), err)
	}
	return &State{fd: fd, original: *termios}, nil
}

// Restore puts the saved mode back. Only the first call does any work, so
// it is safe to call from both a deferred cleanup and a signal path.
func (s *State) Restore() error {
	s.once.Do(func() {
		s.err = unix.IoctlSetTermios(s.fd, ioctlSetTermios, &s.original)
	})
	return s.err
}

// Size returns the width and height of the terminal behind f.
func Size(f *os.File) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
