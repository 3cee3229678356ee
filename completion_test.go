package editline

import (
	"testing"
	"unsafe"

	"editline/bridge"
	"editline/cstring"
	"editline/cstring/cstringtest"
)

var commands = Words{"foo ", "bar ", "bsd ", "cli ", "ls ", "cd ", "malloc ", "tee "}

func TestWordsList(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"b", []string{"bar ", "bsd "}},
		{"c", []string{"cli ", "cd "}},
		{"ma", []string{"malloc "}},
		{"z", nil},
		{"", []string(commands)},
	}

	for _, tt := range tests {
		got := commands.List(tt.word)
		if len(got) != len(tt.want) {
			t.Errorf("List(%q): expected %q, got %q", tt.word, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("List(%q)[%d]: expected %q, got %q", tt.word, i, tt.want[i], got[i])
			}
		}
	}
}

func TestWordsComplete(t *testing.T) {
	tests := []struct {
		word string
		want string
		ok   bool
	}{
		{"cl", "i ", true},
		{"ma", "lloc ", true},
		{"tee ", "", true},
		{"c", "", false},
		{"z", "", false},
	}

	for _, tt := range tests {
		got, ok := commands.Complete(tt.word)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Complete(%q): expected (%q, %v), got (%q, %v)", tt.word, tt.want, tt.ok, got, ok)
		}
	}
}

func TestSuffix(t *testing.T) {
	if _, ok := Suffix("x", []string{"abc"}); ok {
		t.Error("a candidate that does not start with the word has no suffix")
	}
	if _, ok := Suffix("a", []string{"ab", "ac"}); ok {
		t.Error("two candidates have no single suffix")
	}
}

// A listing callback over {"cd ", "cli "} that hides the command just
// run, so "c" has one candidate, and a completion callback driven by that
// same listing.
func TestSingleMatchListingAndCompletion(t *testing.T) {
	useFake(t)

	words := Words{"cd ", "cli "}
	last := "cd "
	list := func(word string) []string {
		var out []string
		for _, w := range words.List(word) {
			if w != last {
				out = append(out, w)
			}
		}
		return out
	}
	SetListPossib(list)
	SetComplete(func(word string) (string, bool) { return Suffix(word, list(word)) })

	a := cstringtest.New()
	var out unsafe.Pointer
	n := bridge.ListPossib(a, cstringtest.CString("c"), &out)
	if n != 1 {
		t.Fatalf("expected 1 candidate, got %d", n)
	}
	entry := *(*unsafe.Pointer)(out)
	if s, _ := cstring.Decode(entry); s != "cli " {
		t.Errorf("expected \"cli \", got %q", s)
	}

	var found int32
	p := bridge.Complete(a, cstringtest.CString("c"), &found)
	if p == nil || found != 1 {
		t.Fatalf("expected a completion, got %v found=%d", p, found)
	}
	if s, _ := cstring.Decode(p); s != "li " {
		t.Errorf("expected suffix \"li \", got %q", s)
	}
}

func TestSetCompleterWordsThroughBridge(t *testing.T) {
	f := useFake(t)
	SetCompleter(commands)
	if f.listInstalled != 1 || f.completeInstalled != 1 {
		t.Fatalf("expected both bridges installed, got %d and %d", f.listInstalled, f.completeInstalled)
	}

	a := cstringtest.New()
	var out unsafe.Pointer
	n := bridge.ListPossib(a, cstringtest.CString("b"), &out)
	if n != 2 {
		t.Fatalf("expected 2 candidates for \"b\", got %d", n)
	}
	entries := unsafe.Slice((*unsafe.Pointer)(out), n)
	for i, want := range []string{"bar ", "bsd "} {
		if s, _ := cstring.Decode(entries[i]); s != want {
			t.Errorf("entry %d: expected %q, got %q", i, want, s)
		}
	}

	var found int32
	if p := bridge.Complete(a, cstringtest.CString("b"), &found); p != nil {
		t.Error("ambiguous word should not complete")
	}
	p := bridge.Complete(a, cstringtest.CString("te"), &found)
	if s, _ := cstring.Decode(p); s != "e " || found != 1 {
		t.Errorf("expected \"e \" with found=1, got %q found=%d", s, found)
	}
}
