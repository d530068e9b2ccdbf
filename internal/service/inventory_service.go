package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"chain-inventory-gateway/internal/core/domain"
	"chain-inventory-gateway/internal/core/ports"
	"chain-inventory-gateway/pkg/apperror"
	"chain-inventory-gateway/pkg/retry"

	"github.com/rs/zerolog"
)

// notFoundRevert is the require() message the inventory contract emits for
// reads against missing ids. It survives wrapping, so substring matching on
// the final error is enough to classify the failure.
const notFoundRevert = "Product does not exist"

// listingPageSize bounds one getProductIds call during enumeration.
const listingPageSize = 100

// InventoryServiceImpl implements ports.InventoryService. Writes go through
// the transaction submitter exactly once and invalidate the cache only after
// the ledger confirms; reads are cache-first with the retry policy wrapping
// every ledger call.
type InventoryServiceImpl struct {
	reader    ports.ContractReader
	submitter ports.TransactionSubmitter
	cache     ports.ProductCache
	retry     retry.Policy
	log       zerolog.Logger
}

// NewInventoryService creates a new InventoryServiceImpl.
func NewInventoryService(
	reader ports.ContractReader,
	submitter ports.TransactionSubmitter,
	cache ports.ProductCache,
	policy retry.Policy,
	log zerolog.Logger,
) *InventoryServiceImpl {
	return &InventoryServiceImpl{
		reader:    reader,
		submitter: submitter,
		cache:     cache,
		retry:     policy,
		log:       log,
	}
}

// Register submits a registerProduct transaction. Id uniqueness is enforced
// by the contract; a duplicate registration reverts and surfaces as a
// ledger execution error.
func (s *InventoryServiceImpl) Register(ctx context.Context, params ports.RegisterParams) (string, error) {
	statusCode, err := domain.ParseStatus(params.Status)
	if err != nil {
		return "", apperror.ErrInvalidStatus(params.Status)
	}

	hash, err := s.submitter.Submit(ctx, "registerProduct",
		params.ID,
		params.Name,
		params.SKU,
		params.BatchNo,
		params.ExpiryDate,
		params.Origin,
		params.Location,
		params.UID,
		params.Category,
		big.NewInt(params.QuantityInStock),
		statusCode,
		params.Icon,
	)
	if err != nil {
		return "", apperror.LedgerExecution(err)
	}

	s.invalidate(ctx, params.ID)
	s.log.Info().Str("id", params.ID).Str("tx", hash).Msg("product registered")
	return hash, nil
}

// UpdateLocation submits an updateLocation transaction. Status transitions
// are caller-trusted; any of the three lifecycle states is accepted.
func (s *InventoryServiceImpl) UpdateLocation(ctx context.Context, params ports.UpdateLocationParams) (string, error) {
	statusCode, err := domain.ParseStatus(params.Status)
	if err != nil {
		return "", apperror.ErrInvalidStatus(params.Status)
	}

	hash, err := s.submitter.Submit(ctx, "updateLocation",
		params.ID,
		params.Location,
		big.NewInt(params.Price),
		statusCode,
	)
	if err != nil {
		return "", apperror.LedgerExecution(err)
	}

	s.invalidate(ctx, params.ID)
	s.log.Info().Str("id", params.ID).Str("tx", hash).Msg("product location updated")
	return hash, nil
}

// LogSale submits a logSale transaction. A repeated sale for the same id
// overwrites the prior sale date and price on the ledger.
func (s *InventoryServiceImpl) LogSale(ctx context.Context, params ports.LogSaleParams) (string, error) {
	hash, err := s.submitter.Submit(ctx, "logSale",
		params.ID,
		params.SaleDate,
		big.NewInt(params.Price),
	)
	if err != nil {
		return "", apperror.LedgerExecution(err)
	}

	s.invalidate(ctx, params.ID)
	s.log.Info().Str("id", params.ID).Str("tx", hash).Msg("sale logged")
	return hash, nil
}

// Delete submits a deleteProduct transaction.
func (s *InventoryServiceImpl) Delete(ctx context.Context, id string) (string, error) {
	hash, err := s.submitter.Submit(ctx, "deleteProduct", id)
	if err != nil {
		return "", apperror.LedgerExecution(err)
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("id", id).Str("tx", hash).Msg("product deleted")
	return hash, nil
}

// ListProducts returns every live product, decoded. The full listing is
// cached as one unit; any confirmed write drops it.
func (s *InventoryServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	cached, ok, err := s.cache.GetListing(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("listing cache read failed, falling through to ledger")
	}
	if ok {
		return cached, nil
	}

	count, err := retry.Value(ctx, s.retry, s.reader.GetProductCount)
	if err != nil {
		return nil, apperror.LedgerRead(err)
	}

	products := make([]domain.Product, 0, count)
	for start := uint64(0); start < count; start += listingPageSize {
		ids, err := retry.Value(ctx, s.retry, func(ctx context.Context) ([]string, error) {
			return s.reader.GetProductIDs(ctx, start, listingPageSize)
		})
		if err != nil {
			return nil, apperror.LedgerRead(err)
		}

		for _, id := range ids {
			product, err := s.GetProduct(ctx, id)
			if err != nil {
				// Deleted between enumeration and fetch; skip it.
				if isNotFound(err) {
					continue
				}
				return nil, err
			}
			products = append(products, *product)
		}
	}

	if err := s.cache.PutListing(ctx, products); err != nil {
		s.log.Warn().Err(err).Msg("listing cache write failed")
	}
	return products, nil
}

// GetProduct returns the decoded product for id, from cache when possible.
// A cache hit that only holds the raw tuple is decoded once and the entry
// upgraded in place.
func (s *InventoryServiceImpl) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	entry, err := s.cache.GetEntry(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("cache read failed, falling through to ledger")
		entry = nil
	}

	if entry == nil {
		raw, err := retry.Value(ctx, s.retry, func(ctx context.Context) (*domain.RawProduct, error) {
			return s.reader.GetProduct(ctx, id)
		})
		if err != nil {
			if isNotFound(err) {
				return nil, domain.ErrProductNotFound
			}
			return nil, apperror.LedgerRead(err)
		}
		entry = &domain.CacheEntry{Raw: raw}
	}

	if !entry.Decoded {
		product := entry.Raw.Decode()
		entry.Product = &product
		entry.Decoded = true
		if err := s.cache.PutEntry(ctx, id, entry); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("cache write failed")
		}
	}

	// A zeroed tuple instead of a revert still means the id is not live.
	if entry.Product.ID == "" {
		return nil, domain.ErrProductNotFound
	}
	return entry.Product, nil
}

// CheckStatus is GetProduct plus the scanner-facing status sentence.
func (s *InventoryServiceImpl) CheckStatus(ctx context.Context, id string) (*domain.Product, string, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var sentence string
	switch product.Status {
	case domain.StatusEnRoute:
		sentence = fmt.Sprintf("Product %s (%s) is en route to %s.", id, product.Name, product.Location)
	case domain.StatusArrived:
		sentence = fmt.Sprintf("Product %s (%s) has arrived at %s.", id, product.Name, product.Location)
	case domain.StatusSold:
		sentence = fmt.Sprintf("Product %s (%s) was sold on %s for %d units.", id, product.Name, product.SaleDate, product.Price)
	default:
		sentence = fmt.Sprintf("Product %s (%s) has an unknown status.", id, product.Name)
	}
	return product, sentence, nil
}

// invalidate drops the per-id entry and the listing after a confirmed write.
// The ledger state already changed, so cache failures here are logged and
// swallowed rather than failing the request; stale entries resolve on the
// next successful invalidation or restart.
func (s *InventoryServiceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("cache invalidation failed")
	}
	if err := s.cache.InvalidateListing(ctx); err != nil {
		s.log.Warn().Err(err).Msg("listing invalidation failed")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrProductNotFound) || strings.Contains(err.Error(), notFoundRevert)
}
