// Package logging builds the slog loggers used by the editline tools.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"
)

// New creates a structured logger writing to f. When f is a terminal the
// output is slog's text format for people; when it is piped or redirected
// it is JSON for machines.
//
// Every logger carries a fresh session id so the lines of one run can be
// picked out of a shared log.
func New(f *os.File, level slog.Level) *slog.Logger {
	return newLogger(f, term.IsTerminal(int(f.Fd())), level)
}

func newLogger(w io.Writer, text bool, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if text {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler).With("session", uuid.NewString())
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return level, nil
}
