package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/caizhw/ojview/internal/catalog"
)

// Snapshot represents the latest catalog available to the UI, plus where it
// came from. Entry collections are replaced wholesale, never edited.
type Snapshot struct {
	Entries       []catalog.Entry
	Branch        string
	RepoUpdatedAt time.Time
	FetchedAt     time.Time
	FromCache     bool // served from the local cache rather than the network
	Stale         bool // cache older than the freshness window
	Sample        bool // built-in sample data, nothing fetched or cached
	LastError     error
	Message       string
}

// Store coordinates snapshot handoff between the loader and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Set replaces the stored snapshot.
func (s *Store) Set(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap.Entries = cloneEntries(snap.Entries)
	s.snapshot = snap
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEntries(entries []catalog.Entry) []catalog.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]catalog.Entry, len(entries))
	copy(dup, entries)
	return dup
}
