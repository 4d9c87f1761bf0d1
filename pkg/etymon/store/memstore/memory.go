package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cognicore/etymon/pkg/etymon/store"
)

// Store is an in-memory implementation of store.Store, used in tests
// and in cache-less runs.
type Store struct {
	mu      sync.RWMutex
	lookups map[string]store.Lookup
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{lookups: make(map[string]store.Lookup)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// GetLookup returns the cached lookup for a normalized word.
func (s *Store) GetLookup(ctx context.Context, word string) (store.Lookup, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lookups[strings.ToLower(word)]
	if !ok {
		return store.Lookup{}, false, nil
	}
	return copyLookup(l), true, nil
}

// PutLookup inserts or replaces the cached lookup for its word.
func (s *Store) PutLookup(ctx context.Context, l store.Lookup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.Word == "" {
		return nil
	}
	s.lookups[strings.ToLower(l.Word)] = copyLookup(l)
	return nil
}

// PurgeBefore removes lookups fetched before cutoff.
func (s *Store) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for word, l := range s.lookups {
		if l.FetchedAt.Before(cutoff) {
			delete(s.lookups, word)
			removed++
		}
	}
	return removed, nil
}

func copyLookup(l store.Lookup) store.Lookup {
	out := l
	out.Sections = make([]store.Section, len(l.Sections))
	copy(out.Sections, l.Sections)
	return out
}
