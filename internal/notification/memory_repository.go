package notification

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int
	storage []Notification
}

// NewMemoryRepository constructs an in-memory repository for tests and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1}
}

func (r *memoryRepository) List(_ context.Context) ([]Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Notification, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int) ([]Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Notification{}
	for _, n := range r.storage {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memoryRepository) Create(_ context.Context, n Notification) (Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, n)
	return n, nil
}
