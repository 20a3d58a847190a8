// Package memory provides in-memory implementations of driven storage
// ports. Nothing in this package survives a restart.
package memory

import (
	"sync"

	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driven"
)

// DefaultHistoryCapacity bounds the session history when no capacity is
// configured.
const DefaultHistoryCapacity = 50

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// It keeps the most recent entries up to a fixed capacity, newest first.
type HistoryStore struct {
	mu       sync.RWMutex
	entries  []domain.HistoryEntry
	capacity int
}

// NewHistoryStore creates a new in-memory history store.
// Non-positive capacities fall back to DefaultHistoryCapacity.
func NewHistoryStore(capacity int) *HistoryStore {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &HistoryStore{
		entries:  make([]domain.HistoryEntry, 0, capacity),
		capacity: capacity,
	}
}

// Add records one completed search, evicting the oldest entry when the
// store is full.
func (s *HistoryStore) Add(entry domain.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]domain.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

// Recent returns up to limit entries, newest first.
func (s *HistoryStore) Recent(limit int) []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}
	return append([]domain.HistoryEntry(nil), s.entries[:limit]...)
}

// Len returns the number of stored entries.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
