package catalog

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Provider seeded at construction. It backs the
// demo deployment and tests; Replace swaps the whole inventory atomically,
// which is how the seed-file watcher pushes reloads.
type MemoryStore struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryStore creates a store holding a copy of the given products.
func NewMemoryStore(products []Product) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(products)
	return s
}

// ListAll returns a snapshot of the current inventory.
func (s *MemoryStore) ListAll(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Replace swaps the entire inventory. Snapshots handed out earlier are
// unaffected.
func (s *MemoryStore) Replace(products []Product) {
	cp := make([]Product, len(products))
	copy(cp, products)
	s.mu.Lock()
	s.products = cp
	s.mu.Unlock()
}
