package ports

import (
	"context"

	"chain-inventory-gateway/internal/core/domain"
)

// InventoryService is the synchronization layer between the HTTP surface
// and the ledger: writes go through the transaction submitter and then
// invalidate the cache; reads are served from the cache or fetched through
// the retry policy.
type InventoryService interface {
	Register(ctx context.Context, params RegisterParams) (string, error)
	UpdateLocation(ctx context.Context, params UpdateLocationParams) (string, error)
	LogSale(ctx context.Context, params LogSaleParams) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// GetProduct returns domain.ErrProductNotFound when the ledger has no
	// live entry for the id.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	// CheckStatus is the GetProduct path plus a human-readable status
	// sentence for handheld scanner display.
	CheckStatus(ctx context.Context, id string) (*domain.Product, string, error)
}

// RegisterParams holds validated input for product registration.
// Uniqueness of the id is the ledger's responsibility, not checked locally.
type RegisterParams struct {
	ID              string
	Name            string
	SKU             string
	BatchNo         string
	ExpiryDate      string
	Origin          string
	Location        string
	UID             string
	Category        string
	QuantityInStock int64
	Status          string
	Icon            string
}

// UpdateLocationParams holds validated input for a location update. Status
// may name any of the three lifecycle states; transitions are caller-trusted
// and not constrained to forward-only.
type UpdateLocationParams struct {
	ID       string
	Location string
	Price    int64
	Status   string
}

// LogSaleParams holds validated input for logging a sale. A repeated sale
// for the same id overwrites the prior sale date and price on the ledger.
type LogSaleParams struct {
	ID       string
	SaleDate string
	Price    int64
}
