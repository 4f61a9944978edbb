package core

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrHistoryNotFound is returned by Get for an unknown id.
var ErrHistoryNotFound = errors.New("history entry not found")

// DefaultHistoryLimit is the page size used when a caller passes limit <= 0.
const DefaultHistoryLimit = 100

// HistoryStore persists conversion history.
type HistoryStore interface {
	Record(ctx context.Context, entry HistoryEntry) error
	// List returns up to limit entries, newest first.
	List(ctx context.Context, limit int) ([]HistoryEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*HistoryEntry, error)
}

// MemoryHistoryStore keeps the most recent entries in a fixed-size ring.
type MemoryHistoryStore struct {
	mu      sync.RWMutex
	entries []HistoryEntry
	next    int
	full    bool
}

// NewMemoryHistoryStore keeps at most capacity entries.
func NewMemoryHistoryStore(capacity int) *MemoryHistoryStore {
	if capacity <= 0 {
		capacity = DefaultHistoryLimit
	}
	return &MemoryHistoryStore{entries: make([]HistoryEntry, capacity)}
}

func (m *MemoryHistoryStore) Record(_ context.Context, entry HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[m.next] = entry
	m.next = (m.next + 1) % len(m.entries)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

func (m *MemoryHistoryStore) List(_ context.Context, limit int) ([]HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.len()
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]HistoryEntry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (m.next - i + len(m.entries)) % len(m.entries)
		out = append(out, m.entries[idx])
	}
	return out, nil
}

func (m *MemoryHistoryStore) Get(_ context.Context, id uuid.UUID) (*HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := 0; i < m.len(); i++ {
		if m.entries[i].ID == id {
			entry := m.entries[i]
			return &entry, nil
		}
	}
	return nil, ErrHistoryNotFound
}

func (m *MemoryHistoryStore) len() int {
	if m.full {
		return len(m.entries)
	}
	return m.next
}
