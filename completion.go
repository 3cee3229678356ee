package editline

import "strings"

// Completer supplies both completion callbacks from one source, so the
// listing shown on an ambiguous word and the text inserted on a unique
// one never disagree.
type Completer interface {
	List(word string) []string
	Complete(word string) (string, bool)
}

// SetCompleter registers c for both candidate listing and completion.
func SetCompleter(c Completer) {
	SetListPossib(c.List)
	SetComplete(c.Complete)
}

// Words completes against a fixed word list by prefix.
type Words []string

// List returns the words that start with word, in list order.
func (w Words) List(word string) []string {
	var matches []string
	for _, candidate := range w {
		if strings.HasPrefix(candidate, word) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// Complete returns the rest of the only word starting with word. It
// reports false when no word or more than one word matches.
func (w Words) Complete(word string) (string, bool) {
	return Suffix(word, w.List(word))
}

// Suffix returns the part of the single candidate beyond the typed word.
// It reports false unless there is exactly one candidate and it starts
// with word.
func Suffix(word string, candidates []string) (string, bool) {
	if len(candidates) != 1 {
		return "", false
	}
	rest, ok := strings.CutPrefix(candidates[0], word)
	if !ok {
		return "", false
	}
	return rest, true
}
