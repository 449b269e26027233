package content

import (
	"context"
	"sync"
)

// MemoryRepository is a simple in-memory repository used for unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]Document
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string][]Document)}
}

// Seed appends documents to the named collection.
func (m *MemoryRepository) Seed(collection string, docs ...Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[collection] = append(m.store[collection], docs...)
}

func (m *MemoryRepository) FindFirst(ctx context.Context, collection string, limit int64) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := m.store[collection]
	if int64(len(docs)) > limit {
		docs = docs[:limit]
	}
	out := make([]Document, len(docs))
	copy(out, docs)
	return out, nil
}
