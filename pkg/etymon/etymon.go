package etymon

import (
	"context"
	"time"

	"github.com/cognicore/etymon/pkg/etymon/dataset"
	"github.com/cognicore/etymon/pkg/etymon/internalerr"
	"github.com/cognicore/etymon/pkg/etymon/normalize"
	"github.com/cognicore/etymon/pkg/etymon/roots"
	"github.com/cognicore/etymon/pkg/etymon/store"
	"github.com/cognicore/etymon/pkg/etymon/wikt"
)

// Remote resolves a word against the remote dictionary service. All
// failures are soft: found=false covers network errors, timeouts, and
// missing pages alike.
type Remote interface {
	Lookup(ctx context.Context, word string) (wikt.Page, bool)
}

// Etymon is the etymology resolution engine: local dataset first, then
// offline root heuristics, then (optionally) the remote service.
type Etymon struct {
	dataset *dataset.Dataset
	lexicon *roots.Lexicon
	remote  Remote
	cache   store.Store
}

// Options configures an Etymon instance. Dataset and Lexicon default to
// empty and built-in respectively; Remote and Cache are optional.
type Options struct {
	Dataset *dataset.Dataset
	Lexicon *roots.Lexicon
	Remote  Remote
	Cache   store.Store
}

// New creates an Etymon instance with the given dependencies.
func New(opts Options) *Etymon {
	e := &Etymon{
		dataset: opts.Dataset,
		lexicon: opts.Lexicon,
		remote:  opts.Remote,
		cache:   opts.Cache,
	}
	if e.dataset == nil {
		e.dataset = dataset.New(nil)
	}
	if e.lexicon == nil {
		e.lexicon = roots.Default()
	}
	return e
}

// Close releases the lookup cache, if any.
func (e *Etymon) Close() error {
	if e.cache != nil {
		return e.cache.Close()
	}
	return nil
}

// Dataset returns the current dataset.
func (e *Etymon) Dataset() *dataset.Dataset { return e.dataset }

// SetDataset swaps the dataset, e.g. after a merge. Persisting the new
// dataset is the caller's responsibility.
func (e *Etymon) SetDataset(d *dataset.Dataset) {
	if d == nil {
		d = dataset.New(nil)
	}
	e.dataset = d
}

// Lexicon returns the root/affix lexicon.
func (e *Etymon) Lexicon() *roots.Lexicon { return e.lexicon }

// Outcome tags the terminal state of a resolution.
type Outcome int

const (
	// OutcomeFoundLocal: the dataset holds the word with a non-empty
	// etymology.
	OutcomeFoundLocal Outcome = iota + 1
	// OutcomeHeuristicOnly: local miss, remote not attempted; only the
	// (possibly empty) root match set is available.
	OutcomeHeuristicOnly
	// OutcomeRemoteFound: the remote document was resolved; Sections
	// may be empty when the page has no etymology heading.
	OutcomeRemoteFound
	// OutcomeRemoteNotFound: remote lookup was attempted and failed or
	// found nothing; the root match set is still carried.
	OutcomeRemoteNotFound
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFoundLocal:
		return "found-local"
	case OutcomeHeuristicOnly:
		return "heuristic-only"
	case OutcomeRemoteFound:
		return "remote-found"
	case OutcomeRemoteNotFound:
		return "remote-not-found"
	}
	return "unknown"
}

// Result is the pipeline's output contract. Fields beyond Word and
// Outcome are populated per outcome, as documented on the constants.
type Result struct {
	// Word is the normalized form that was resolved.
	Word    string
	Outcome Outcome

	// Entry is set for OutcomeFoundLocal.
	Entry dataset.Entry
	// Roots is the deduplicated, sorted heuristic match set. Populated
	// for every outcome except OutcomeFoundLocal; may be empty.
	Roots []string
	// Title and Sections are set for OutcomeRemoteFound.
	Title    string
	Sections []wikt.Section
	// FromCache marks a remote result answered from the lookup cache.
	FromCache bool
}

// Resolve runs the fallback chain for one word. Empty normalized input
// fails with internalerr.ErrInvalidInput; beyond that, every external
// failure degrades to a defined outcome instead of an error.
func (e *Etymon) Resolve(ctx context.Context, raw string, online bool) (Result, error) {
	word := normalize.Word(raw)
	if word == "" {
		return Result{}, internalerr.ErrInvalidInput
	}

	if entry, ok := e.dataset.Lookup(word); ok && entry.Etymology != "" {
		return Result{Word: word, Outcome: OutcomeFoundLocal, Entry: entry}, nil
	}

	matches := e.lexicon.FindRoots(word)

	if !online {
		return Result{Word: word, Outcome: OutcomeHeuristicOnly, Roots: matches}, nil
	}

	if res, ok := e.cachedResult(ctx, word, matches); ok {
		return res, nil
	}

	if e.remote == nil {
		return Result{Word: word, Outcome: OutcomeRemoteNotFound, Roots: matches}, nil
	}

	page, found := e.remote.Lookup(ctx, word)
	if !found {
		return Result{Word: word, Outcome: OutcomeRemoteNotFound, Roots: matches}, nil
	}

	e.cacheResult(ctx, word, page)

	return Result{
		Word:     word,
		Outcome:  OutcomeRemoteFound,
		Roots:    matches,
		Title:    page.Title,
		Sections: page.Sections,
	}, nil
}

// cachedResult answers from the lookup cache when possible. Cache
// errors are treated as misses.
func (e *Etymon) cachedResult(ctx context.Context, word string, matches []string) (Result, bool) {
	if e.cache == nil {
		return Result{}, false
	}

	cached, ok, err := e.cache.GetLookup(ctx, word)
	if err != nil || !ok {
		return Result{}, false
	}

	sections := make([]wikt.Section, len(cached.Sections))
	for i, s := range cached.Sections {
		sections[i] = wikt.Section{Heading: s.Heading, Body: s.Body}
	}
	return Result{
		Word:      word,
		Outcome:   OutcomeRemoteFound,
		Roots:     matches,
		Title:     cached.Title,
		Sections:  sections,
		FromCache: true,
	}, true
}

// cacheResult stores a successful remote lookup. Best effort: a write
// failure must not degrade the resolution itself.
func (e *Etymon) cacheResult(ctx context.Context, word string, page wikt.Page) {
	if e.cache == nil {
		return
	}

	sections := make([]store.Section, len(page.Sections))
	for i, s := range page.Sections {
		sections[i] = store.Section{Heading: s.Heading, Body: s.Body}
	}
	_ = e.cache.PutLookup(ctx, store.Lookup{
		Word:      word,
		Title:     page.Title,
		Sections:  sections,
		FetchedAt: time.Now(),
	})
}
