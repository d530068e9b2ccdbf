package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chain-inventory-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix = "product:"
	listingKey       = "products"
)

// ProductCache implements ports.ProductCache on Redis, for deployments
// where the cache should survive process restarts or be shared between
// replicas. Keys carry no TTL; writers invalidate explicitly.
type ProductCache struct {
	client *goredis.Client
}

// NewProductCache creates a Redis-backed product cache.
func NewProductCache(client *goredis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// GetEntry returns the cached entry for id, or nil on a miss.
func (c *ProductCache) GetEntry(ctx context.Context, id string) (*domain.CacheEntry, error) {
	data, err := c.client.Get(ctx, productKeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache entry: %w", err)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}
	return &entry, nil
}

// PutEntry stores the entry for id, replacing any previous one.
func (c *ProductCache) PutEntry(ctx context.Context, id string, entry *domain.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := c.client.Set(ctx, productKeyPrefix+id, data, 0).Err(); err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

// GetListing returns the cached full listing. The bool reports whether a
// listing is cached at all, so an empty inventory is still a hit.
func (c *ProductCache) GetListing(ctx context.Context) ([]domain.Product, bool, error) {
	data, err := c.client.Get(ctx, listingKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading listing: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false, fmt.Errorf("decoding listing: %w", err)
	}
	return products, true, nil
}

// PutListing stores the full listing verbatim.
func (c *ProductCache) PutListing(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encoding listing: %w", err)
	}
	if err := c.client.Set(ctx, listingKey, data, 0).Err(); err != nil {
		return fmt.Errorf("storing listing: %w", err)
	}
	return nil
}

// Invalidate removes the entry for id. Missing entries are not an error.
func (c *ProductCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, productKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("invalidating cache entry: %w", err)
	}
	return nil
}

// InvalidateListing drops the cached listing.
func (c *ProductCache) InvalidateListing(ctx context.Context) error {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("invalidating listing: %w", err)
	}
	return nil
}
