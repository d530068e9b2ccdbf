package ports

import (
	"context"

	"chain-inventory-gateway/internal/core/domain"
)

// ProductCache is the process-owned store of last-known product state.
// There is no TTL: staleness is driven entirely by explicit invalidation
// tied to confirmed writes, never by wall-clock time. Two key classes
// exist — per-id entries and the one full-listing slot.
type ProductCache interface {
	// GetEntry returns the cached entry for a product id, or nil on miss.
	GetEntry(ctx context.Context, id string) (*domain.CacheEntry, error)
	// PutEntry stores or replaces the entry for a product id.
	PutEntry(ctx context.Context, id string, entry *domain.CacheEntry) error
	// GetListing returns the previously assembled product array verbatim.
	// ok reports whether a listing is cached; an empty cached listing is
	// a valid hit.
	GetListing(ctx context.Context) (products []domain.Product, ok bool, err error)
	// PutListing stores the full product listing.
	PutListing(ctx context.Context, products []domain.Product) error
	// Invalidate drops the entry for a product id.
	Invalidate(ctx context.Context, id string) error
	// InvalidateListing drops the full-listing slot.
	InvalidateListing(ctx context.Context) error
}
