package normalize

import "strings"

// Word reduces raw user input to its canonical lookup form: every rune
// that is not an ASCII letter, hyphen, or apostrophe is dropped, and
// surrounding whitespace is trimmed. An empty result means the input
// contained no usable word; callers decide whether that is an error.
func Word(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' || r == '\'' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Key returns the case-folded form of Word, used as a dataset and
// lexicon lookup key.
func Key(raw string) string {
	return strings.ToLower(Word(raw))
}
