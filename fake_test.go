package editline

import (
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"

	"editline/cstring"
)

// fakeLibrary stands in for libeditline. History is kept in memory and
// persisted one line per entry, which is enough to exercise the error
// paths of the history calls against a real filesystem.
type fakeLibrary struct {
	lines   []fakeLine
	prompts []string
	buffer  string
	history []string

	bindings []fakeBinding

	listInstalled     int
	completeInstalled int
}

type fakeLine struct {
	text string
	ok   bool
}

type fakeBinding struct {
	code int
	meta bool
	slot int
}

func useFake(t *testing.T) *fakeLibrary {
	t.Helper()
	f := &fakeLibrary{}
	saved := lib
	lib = f
	t.Cleanup(func() { lib = saved })
	return f
}

func (f *fakeLibrary) ReadLine(prompt string) (string, bool) {
	if !cstring.Valid(prompt) {
		return "", false
	}
	f.prompts = append(f.prompts, prompt)
	if len(f.lines) == 0 {
		return "", false
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return l.text, l.ok
}

func (f *fakeLibrary) LineBuffer() (string, bool) {
	return f.buffer, true
}

func (f *fakeLibrary) ReadHistory(path string) (int, error) {
	if !cstring.Valid(path) {
		return 0, ErrInvalidString
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errnoOf(err), nil
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			f.history = append(f.history, line)
		}
	}
	return 0, nil
}

func (f *fakeLibrary) WriteHistory(path string) (int, error) {
	if !cstring.Valid(path) {
		return 0, ErrInvalidString
	}
	data := strings.Join(f.history, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return errnoOf(err), nil
	}
	return 0, nil
}

func (f *fakeLibrary) AddHistory(line string) error {
	if !cstring.Valid(line) {
		return ErrInvalidString
	}
	f.history = append(f.history, line)
	return nil
}

func (f *fakeLibrary) BindKey(code int, meta bool, slot int) {
	f.bindings = append(f.bindings, fakeBinding{code, meta, slot})
}

func (f *fakeLibrary) InstallListPossib() { f.listInstalled++ }
func (f *fakeLibrary) InstallComplete()   { f.completeInstalled++ }

func errnoOf(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return -1
}
