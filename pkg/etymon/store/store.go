package store

import (
	"context"
	"time"
)

// Store persists successful remote lookups so repeat queries can be
// answered offline. Failed and not-found lookups are never stored.
type Store interface {
	Close() error

	// GetLookup returns the cached lookup for a normalized word.
	GetLookup(ctx context.Context, word string) (Lookup, bool, error)
	// PutLookup inserts or replaces the cached lookup for its word.
	PutLookup(ctx context.Context, l Lookup) error
	// PurgeBefore removes lookups fetched before cutoff and reports how
	// many were removed.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Lookup is one cached remote resolution.
type Lookup struct {
	// Word is the normalized, lowercased query the lookup answers.
	Word string
	// Title is the canonical title the remote service resolved to.
	Title string
	// Sections are the extracted etymology sections, in document order.
	Sections []Section
	// FetchedAt records when the remote fetch happened.
	FetchedAt time.Time
}

// Section mirrors an extracted etymology section.
type Section struct {
	Heading string
	Body    string
}
