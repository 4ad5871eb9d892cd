package audit

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryStore is an in-process Store backing tests without a MongoDB
// instance, mirroring pkg/session's memory backend.
type memoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{records: make(map[string]Record)}
}

func (m *memoryStore) Record(_ context.Context, rec Record) error {
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.RunID] = rec
	return nil
}

func (m *memoryStore) Get(_ context.Context, runID string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[runID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *memoryStore) Recent(_ context.Context, n int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].RecordedAt.After(all[j].RecordedAt) })
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all, nil
}

func (m *memoryStore) Close(context.Context) error { return nil }

var _ Store = (*memoryStore)(nil)
