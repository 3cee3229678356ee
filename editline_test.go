package editline

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatusOrdinals(t *testing.T) {
	tests := []struct {
		status Status
		name   string
	}{
		{Done, "done"},
		{EOF, "eof"},
		{Move, "move"},
		{Dispatch, "dispatch"},
		{Stay, "stay"},
		{Signal, "signal"},
	}

	for i, tt := range tests {
		if int(tt.status) != i {
			t.Errorf("%s: expected ordinal %d, got %d", tt.name, i, int(tt.status))
		}
		if tt.status.String() != tt.name {
			t.Errorf("expected %q, got %q", tt.name, tt.status.String())
		}
	}

	if got := Status(9).String(); got != "status(9)" {
		t.Errorf("unknown status: got %q", got)
	}
}

func TestReadLine(t *testing.T) {
	f := useFake(t)
	f.lines = []fakeLine{
		{"ls -l", true},
		{"", true},
		{"", false},
	}

	line, ok := ReadLine("test> ")
	if !ok || line != "ls -l" {
		t.Errorf("expected \"ls -l\", got %q (ok=%v)", line, ok)
	}

	line, ok = ReadLine("test> ")
	if !ok {
		t.Error("an empty line must be reported as something")
	}
	if line != "" {
		t.Errorf("expected empty line, got %q", line)
	}

	if _, ok := ReadLine("test> "); ok {
		t.Error("end of input must be reported as nothing")
	}

	if len(f.prompts) != 3 || f.prompts[0] != "test> " {
		t.Errorf("unexpected prompts %q", f.prompts)
	}
}

func TestReadLineUnencodablePrompt(t *testing.T) {
	f := useFake(t)
	f.lines = []fakeLine{{"never", true}}

	if _, ok := ReadLine("bad\x00prompt"); ok {
		t.Error("a prompt with NUL should report nothing")
	}
	if len(f.lines) != 1 {
		t.Error("the native reader should not run")
	}
}

func TestLineBuffer(t *testing.T) {
	f := useFake(t)
	f.buffer = "git sta"
	if s, ok := LineBuffer(); !ok || s != "git sta" {
		t.Errorf("expected \"git sta\", got %q (ok=%v)", s, ok)
	}
}

func TestReadHistoryMissingFile(t *testing.T) {
	useFake(t)
	path := filepath.Join(t.TempDir(), "missing.history")

	err := ReadHistory(path)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name %s", err, path)
	}

	var herr *HistoryError
	if !errors.As(err, &herr) {
		t.Fatalf("expected *HistoryError, got %T", err)
	}
	if herr.Op != "read" || herr.Path != path || herr.Code == 0 {
		t.Errorf("unexpected error fields %+v", herr)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected errors.Is(err, fs.ErrNotExist), got %v", err)
	}
}

func TestWriteThenReadHistory(t *testing.T) {
	f := useFake(t)
	path := filepath.Join(t.TempDir(), "editline.history")

	AddHistory("ls")
	AddHistory("cd /tmp")
	if err := WriteHistory(path); err != nil {
		t.Fatalf("WriteHistory: %v", err)
	}

	f.history = nil
	if err := ReadHistory(path); err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}
	if len(f.history) != 2 || f.history[1] != "cd /tmp" {
		t.Errorf("unexpected history %q", f.history)
	}
}

func TestWriteHistoryUnwritablePath(t *testing.T) {
	useFake(t)
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "history")

	err := WriteHistory(path)
	var herr *HistoryError
	if !errors.As(err, &herr) || herr.Op != "write" {
		t.Fatalf("expected a write *HistoryError, got %v", err)
	}
}

func TestHistoryPathWithNUL(t *testing.T) {
	useFake(t)
	err := ReadHistory("bad\x00path")
	if !errors.Is(err, ErrInvalidString) {
		t.Errorf("expected ErrInvalidString, got %v", err)
	}
}

func TestHistoryResultNegativeCode(t *testing.T) {
	err := historyResult("write", "/h", -1, nil)
	var herr *HistoryError
	if !errors.As(err, &herr) || herr.Code != -1 {
		t.Fatalf("unexpected error %v", err)
	}
	if historyResult("read", "/h", 0, nil) != nil {
		t.Error("status 0 must be success")
	}
}

func TestAddHistoryIgnoresNUL(t *testing.T) {
	f := useFake(t)
	AddHistory("ok")
	AddHistory("not\x00ok")
	if len(f.history) != 1 || f.history[0] != "ok" {
		t.Errorf("unexpected history %q", f.history)
	}
}

func TestSetCallbacksInstallBridges(t *testing.T) {
	f := useFake(t)
	SetListPossib(func(string) []string { return nil })
	SetListPossib(func(string) []string { return nil })
	SetComplete(func(string) (string, bool) { return "", false })

	if f.listInstalled != 2 || f.completeInstalled != 1 {
		t.Errorf("expected 2 list and 1 complete installs, got %d and %d", f.listInstalled, f.completeInstalled)
	}
}

func TestSetListPossibNilPanics(t *testing.T) {
	useFake(t)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a nil function")
		}
	}()
	SetListPossib(nil)
}
