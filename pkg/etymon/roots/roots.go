package roots

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cognicore/etymon/pkg/etymon/internalerr"
)

// Lexicon is an immutable table of known roots and affixes, each mapped
// to a short origin explanation. The table is fixed at construction;
// matching state (the compiled alternation) is built once and reused.
//
// Two semantic classes share the table: true roots (Greek/Latin
// morphemes) and affixes (prefixes/suffixes). They are structurally
// identical, so no distinction is kept beyond the explanation text.
type Lexicon struct {
	entries map[string]string
	re      *regexp.Regexp
}

// New builds a lexicon from pattern -> explanation pairs. Patterns are
// lowercased; empty patterns are rejected.
func New(entries map[string]string) (*Lexicon, error) {
	if len(entries) == 0 {
		return nil, internalerr.ErrInvalidConfig
	}

	normalized := make(map[string]string, len(entries))
	patterns := make([]string, 0, len(entries))
	for pattern, explanation := range entries {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "" {
			return nil, internalerr.ErrInvalidConfig
		}
		if _, dup := normalized[pattern]; !dup {
			patterns = append(patterns, pattern)
		}
		normalized[pattern] = strings.TrimSpace(explanation)
	}

	// Longer alternatives first so a longer pattern is never shadowed
	// by a shorter one starting at the same offset ("script" must win
	// over "scr"). Ties break lexicographically for determinism.
	sort.Slice(patterns, func(i, j int) bool {
		if len(patterns[i]) != len(patterns[j]) {
			return len(patterns[i]) > len(patterns[j])
		}
		return patterns[i] < patterns[j]
	})

	quoted := make([]string, len(patterns))
	for i, p := range patterns {
		quoted[i] = regexp.QuoteMeta(p)
	}
	re, err := regexp.Compile("(?i)" + strings.Join(quoted, "|"))
	if err != nil {
		return nil, err
	}

	return &Lexicon{entries: normalized, re: re}, nil
}

// Has reports whether pattern is an exact lexicon key (case-insensitive).
func (l *Lexicon) Has(pattern string) bool {
	_, ok := l.entries[strings.ToLower(pattern)]
	return ok
}

// Explain returns the origin explanation for an exact lexicon key.
func (l *Lexicon) Explain(pattern string) (string, bool) {
	explanation, ok := l.entries[strings.ToLower(pattern)]
	return explanation, ok
}

// Patterns returns all lexicon keys, sorted.
func (l *Lexicon) Patterns() []string {
	out := make([]string, 0, len(l.entries))
	for p := range l.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of entries in the table.
func (l *Lexicon) Len() int { return len(l.entries) }

// FindRoots scans word for every known root/affix substring and returns
// the distinct hits, lowercased and sorted. Matching is case-insensitive.
// No hits is a valid outcome and yields an empty slice.
func (l *Lexicon) FindRoots(word string) []string {
	seen := make(map[string]struct{})
	for _, m := range l.re.FindAllString(word, -1) {
		seen[strings.ToLower(m)] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
