package dataset

import (
	"sort"
	"strings"
)

// Entry is a single word record. Notes is free text; by convention it
// carries a single tag (e.g. "grade8") used for grouping.
type Entry struct {
	Word      string
	Etymology string
	Notes     string
}

// MergeMode selects how an incoming record set is combined with the
// existing one.
type MergeMode int

const (
	// Append keeps existing entries and adds the incoming ones after them.
	Append MergeMode = iota
	// Replace discards existing entries entirely.
	Replace
)

// Dataset is an in-memory, ordered collection of entries with a
// case-insensitive word index. Later entries win lookups when a word
// occurs more than once, matching load order.
type Dataset struct {
	entries []Entry
	index   map[string]int
}

// New builds a dataset from entries. Entries without a word are dropped.
func New(entries []Entry) *Dataset {
	d := &Dataset{}
	for _, e := range entries {
		d.add(e)
	}
	return d
}

func (d *Dataset) add(e Entry) {
	e.Word = strings.TrimSpace(e.Word)
	e.Etymology = strings.TrimSpace(e.Etymology)
	e.Notes = strings.TrimSpace(e.Notes)
	if e.Word == "" {
		return
	}
	d.entries = append(d.entries, e)
	if d.index == nil {
		d.index = make(map[string]int)
	}
	d.index[strings.ToLower(e.Word)] = len(d.entries) - 1
}

// Len returns the number of entries.
func (d *Dataset) Len() int { return len(d.entries) }

// Entries returns a copy of all entries in load order.
func (d *Dataset) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Lookup finds an entry by word, case-insensitively.
func (d *Dataset) Lookup(word string) (Entry, bool) {
	if d.index == nil {
		return Entry{}, false
	}
	i, ok := d.index[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// FilterByNote returns the sorted set of words whose notes equal tag,
// case-insensitively and after trimming.
func (d *Dataset) FilterByNote(tag string) []string {
	tag = strings.ToLower(strings.TrimSpace(tag))

	seen := make(map[string]struct{})
	for _, e := range d.entries {
		if strings.ToLower(strings.TrimSpace(e.Notes)) == tag {
			seen[e.Word] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Merge combines incoming into d according to mode and returns the
// result as a new dataset. The caller is responsible for persisting it.
func (d *Dataset) Merge(incoming *Dataset, mode MergeMode) *Dataset {
	if mode == Replace {
		return New(incoming.Entries())
	}
	return New(append(d.Entries(), incoming.Entries()...))
}
