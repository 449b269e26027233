package messages

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is a simple in-memory repository used for unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Message
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Message)}
}

func (m *MemoryRepository) Insert(ctx context.Context, msg *Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	m.store[id] = msg
	m.order = append(m.order, id)
	return id, nil
}

// Get returns the stored message for id, or nil.
func (m *MemoryRepository) Get(id string) *Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store[id]
}

// Len reports how many messages have been stored.
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
