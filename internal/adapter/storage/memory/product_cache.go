// Package memory provides an in-process ProductCache backed by plain maps.
// It is the default backend for single-instance deployments where the cache
// does not need to outlive the process.
package memory

import (
	"context"
	"sync"

	"chain-inventory-gateway/internal/core/domain"
)

// ProductCache implements ports.ProductCache with process-local state.
// Entries never expire; writers invalidate explicitly after confirmed
// ledger mutations.
type ProductCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.CacheEntry
	listing []domain.Product
	listed  bool
}

// NewProductCache creates an empty in-memory product cache.
func NewProductCache() *ProductCache {
	return &ProductCache{
		entries: make(map[string]*domain.CacheEntry),
	}
}

// GetEntry returns the cached entry for id, or nil on a miss.
func (c *ProductCache) GetEntry(_ context.Context, id string) (*domain.CacheEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *entry
	return &cp, nil
}

// PutEntry stores the entry for id, replacing any previous one.
func (c *ProductCache) PutEntry(_ context.Context, id string, entry *domain.CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cp := *entry
	c.entries[id] = &cp
	return nil
}

// GetListing returns the cached full listing. The bool reports whether a
// listing is cached at all, so an empty inventory is still a hit.
func (c *ProductCache) GetListing(_ context.Context) ([]domain.Product, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.listed {
		return nil, false, nil
	}
	out := make([]domain.Product, len(c.listing))
	copy(out, c.listing)
	return out, true, nil
}

// PutListing stores the full listing verbatim.
func (c *ProductCache) PutListing(_ context.Context, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listing = make([]domain.Product, len(products))
	copy(c.listing, products)
	c.listed = true
	return nil
}

// Invalidate removes the entry for id. Missing entries are not an error.
func (c *ProductCache) Invalidate(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
	return nil
}

// InvalidateListing drops the cached listing.
func (c *ProductCache) InvalidateListing(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listing = nil
	c.listed = false
	return nil
}
