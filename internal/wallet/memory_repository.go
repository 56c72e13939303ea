package wallet

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int
	storage map[int]Wallet
}

// NewMemoryRepository constructs an in-memory repository for tests and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1, storage: make(map[int]Wallet)}
}

func cloneWallet(w Wallet) Wallet {
	balance := make(map[string]float64, len(w.Balance))
	for code, amount := range w.Balance {
		balance[code] = amount
	}
	w.Balance = balance
	return w
}

func (r *memoryRepository) List(_ context.Context) ([]Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallets := make([]Wallet, 0, len(r.storage))
	for _, w := range r.storage {
		wallets = append(wallets, cloneWallet(w))
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
	return wallets, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int) ([]Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallets := []Wallet{}
	for _, w := range r.storage {
		if w.UserID == userID {
			wallets = append(wallets, cloneWallet(w))
		}
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
	return wallets, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int) (Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.storage[id]
	if !ok {
		return Wallet{}, ErrNotFound
	}
	return cloneWallet(w), nil
}

func (r *memoryRepository) Create(_ context.Context, w Wallet) (Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = r.nextID
	r.nextID++
	r.storage[w.ID] = cloneWallet(w)
	return w, nil
}

func (r *memoryRepository) Update(_ context.Context, w Wallet) (Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[w.ID]; !ok {
		return Wallet{}, ErrNotFound
	}
	r.storage[w.ID] = cloneWallet(w)
	return w, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[id]; !ok {
		return ErrNotFound
	}
	delete(r.storage, id)
	return nil
}
