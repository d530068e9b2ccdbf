package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"chain-inventory-gateway/internal/core/domain"
	"chain-inventory-gateway/internal/core/ports"
	"chain-inventory-gateway/internal/core/ports/mocks"
	"chain-inventory-gateway/pkg/apperror"
	"chain-inventory-gateway/pkg/retry"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type inventoryTestDeps struct {
	svc       *InventoryServiceImpl
	reader    *mocks.MockContractReader
	submitter *mocks.MockTransactionSubmitter
	cache     *mocks.MockProductCache
	ctrl      *gomock.Controller
}

func setupInventoryService(t *testing.T) *inventoryTestDeps {
	ctrl := gomock.NewController(t)
	d := &inventoryTestDeps{
		reader:    mocks.NewMockContractReader(ctrl),
		submitter: mocks.NewMockTransactionSubmitter(ctrl),
		cache:     mocks.NewMockProductCache(ctrl),
		ctrl:      ctrl,
	}
	// Zero delay keeps multi-attempt tests fast.
	d.svc = NewInventoryService(
		d.reader, d.submitter, d.cache,
		retry.Policy{Attempts: 3, Delay: 0}, zerolog.Nop(),
	)
	return d
}

func rawProduct(id string) *domain.RawProduct {
	return &domain.RawProduct{
		ID:              id,
		Name:            "Amoxicillin 500mg",
		SKU:             "SKU-" + id,
		BatchNo:         "B-42",
		ExpiryDate:      "2027-03-01",
		Origin:          "Hanoi",
		Location:        "Hanoi",
		UID:             "UID-" + id,
		Price:           big.NewInt(1200),
		Category:        "Antibiotics",
		QuantityInStock: big.NewInt(40),
		Status:          0,
		Icon:            "BookReader",
	}
}

func registerParams() ports.RegisterParams {
	return ports.RegisterParams{
		ID:              "MED-001",
		Name:            "Amoxicillin 500mg",
		SKU:             "SKU-MED-001",
		BatchNo:         "B-42",
		ExpiryDate:      "2027-03-01",
		Origin:          "Hanoi",
		Location:        "Hanoi",
		UID:             "UID-MED-001",
		Category:        "Antibiotics",
		QuantityInStock: 40,
		Status:          "en route",
		Icon:            "BookReader",
	}
}

// ==================== Write path tests ====================

func TestInventoryService_Register_Success(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.submitter.EXPECT().Submit(ctx, "registerProduct",
		"MED-001", "Amoxicillin 500mg", "SKU-MED-001", "B-42", "2027-03-01",
		"Hanoi", "Hanoi", "UID-MED-001", "Antibiotics",
		big.NewInt(40), uint8(0), "BookReader",
	).Return("0xabc", nil)
	d.cache.EXPECT().Invalidate(ctx, "MED-001").Return(nil)
	d.cache.EXPECT().InvalidateListing(ctx).Return(nil)

	hash, err := d.svc.Register(ctx, registerParams())
	require.NoError(t, err)
	assert.Equal(t, "0xabc", hash)
}

func TestInventoryService_Register_InvalidStatusRejectedBeforeSubmission(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()

	params := registerParams()
	params.Status = "teleporting"

	// No Submit expectation: validation failures never reach the ledger.
	_, err := d.svc.Register(context.Background(), params)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_002", appErr.Code)
}

func TestInventoryService_Register_SubmissionFailureLeavesCacheUntouched(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	submitErr := errors.New("insufficient funds for gas")
	d.submitter.EXPECT().Submit(ctx, "registerProduct",
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(),
	).Return("", submitErr)
	// No Invalidate expectations: a failed write must not touch the cache.

	_, err := d.svc.Register(ctx, registerParams())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
	assert.Equal(t, submitErr.Error(), appErr.Message, "underlying message surfaces verbatim")
}

func TestInventoryService_Register_SubmitCalledExactlyOnce(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	// Times(1) is the point: writes are never auto-retried.
	d.submitter.EXPECT().Submit(ctx, "registerProduct",
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(),
	).Return("", errors.New("nonce too low")).Times(1)

	_, err := d.svc.Register(ctx, registerParams())
	require.Error(t, err)
}

func TestInventoryService_UpdateLocation_Success(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.submitter.EXPECT().Submit(ctx, "updateLocation",
		"MED-001", "Da Nang", big.NewInt(1500), uint8(1),
	).Return("0xdef", nil)
	d.cache.EXPECT().Invalidate(ctx, "MED-001").Return(nil)
	d.cache.EXPECT().InvalidateListing(ctx).Return(nil)

	hash, err := d.svc.UpdateLocation(ctx, ports.UpdateLocationParams{
		ID: "MED-001", Location: "Da Nang", Price: 1500, Status: "arrived",
	})
	require.NoError(t, err)
	assert.Equal(t, "0xdef", hash)
}

func TestInventoryService_UpdateLocation_InvalidStatus(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.UpdateLocation(context.Background(), ports.UpdateLocationParams{
		ID: "MED-001", Location: "Da Nang", Price: 1500, Status: "delivered",
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_002", appErr.Code)
}

func TestInventoryService_LogSale_Success(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.submitter.EXPECT().Submit(ctx, "logSale",
		"MED-001", "2026-08-30", big.NewInt(1800),
	).Return("0x123", nil)
	d.cache.EXPECT().Invalidate(ctx, "MED-001").Return(nil)
	d.cache.EXPECT().InvalidateListing(ctx).Return(nil)

	hash, err := d.svc.LogSale(ctx, ports.LogSaleParams{
		ID: "MED-001", SaleDate: "2026-08-30", Price: 1800,
	})
	require.NoError(t, err)
	assert.Equal(t, "0x123", hash)
}

// A second sale for the same id is submitted like any other: the ledger
// overwrites the earlier sale date and price.
func TestInventoryService_LogSale_RepeatedSaleResubmits(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.submitter.EXPECT().Submit(ctx, "logSale", "MED-001", "2026-08-30", big.NewInt(1800)).Return("0x111", nil)
	d.submitter.EXPECT().Submit(ctx, "logSale", "MED-001", "2026-08-31", big.NewInt(1700)).Return("0x222", nil)
	d.cache.EXPECT().Invalidate(ctx, "MED-001").Return(nil).Times(2)
	d.cache.EXPECT().InvalidateListing(ctx).Return(nil).Times(2)

	_, err := d.svc.LogSale(ctx, ports.LogSaleParams{ID: "MED-001", SaleDate: "2026-08-30", Price: 1800})
	require.NoError(t, err)
	_, err = d.svc.LogSale(ctx, ports.LogSaleParams{ID: "MED-001", SaleDate: "2026-08-31", Price: 1700})
	require.NoError(t, err)
}

func TestInventoryService_Delete_Success(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.submitter.EXPECT().Submit(ctx, "deleteProduct", "MED-001").Return("0x456", nil)
	d.cache.EXPECT().Invalidate(ctx, "MED-001").Return(nil)
	d.cache.EXPECT().InvalidateListing(ctx).Return(nil)

	hash, err := d.svc.Delete(ctx, "MED-001")
	require.NoError(t, err)
	assert.Equal(t, "0x456", hash)
}

// Invalidation failures after a confirmed write are logged and swallowed:
// the ledger already changed, so the caller still gets the hash.
func TestInventoryService_Delete_InvalidationFailureDoesNotFailWrite(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.submitter.EXPECT().Submit(ctx, "deleteProduct", "MED-001").Return("0x456", nil)
	d.cache.EXPECT().Invalidate(ctx, "MED-001").Return(errors.New("redis down"))
	d.cache.EXPECT().InvalidateListing(ctx).Return(errors.New("redis down"))

	hash, err := d.svc.Delete(ctx, "MED-001")
	require.NoError(t, err)
	assert.Equal(t, "0x456", hash)
}

// ==================== Read path tests ====================

func TestInventoryService_GetProduct_MissFetchesAndCachesDecoded(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(nil, nil)
	d.reader.EXPECT().GetProduct(ctx, "MED-001").Return(rawProduct("MED-001"), nil)
	d.cache.EXPECT().PutEntry(ctx, "MED-001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entry *domain.CacheEntry) error {
			assert.True(t, entry.Decoded)
			assert.NotNil(t, entry.Raw)
			assert.NotNil(t, entry.Product)
			return nil
		})

	product, err := d.svc.GetProduct(ctx, "MED-001")
	require.NoError(t, err)
	assert.Equal(t, "MED-001", product.ID)
	assert.Equal(t, domain.StatusEnRoute, product.Status)
	assert.True(t, product.Exists)
}

func TestInventoryService_GetProduct_DecodedHitSkipsLedger(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	raw := rawProduct("MED-001")
	product := raw.Decode()
	d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(&domain.CacheEntry{
		Raw: raw, Product: &product, Decoded: true,
	}, nil)
	// No reader expectation: a decoded hit never touches the ledger.

	got, err := d.svc.GetProduct(ctx, "MED-001")
	require.NoError(t, err)
	assert.Equal(t, &product, got)
}

func TestInventoryService_GetProduct_RawHitDecodesOnceAndUpgrades(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(&domain.CacheEntry{Raw: rawProduct("MED-001")}, nil)
	d.cache.EXPECT().PutEntry(ctx, "MED-001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entry *domain.CacheEntry) error {
			assert.True(t, entry.Decoded)
			return nil
		})

	product, err := d.svc.GetProduct(ctx, "MED-001")
	require.NoError(t, err)
	assert.Equal(t, "Amoxicillin 500mg", product.Name)
}

func TestInventoryService_GetProduct_RetriesTransientReadFailures(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(nil, nil)
	transient := errors.New("getProduct: 429 Too Many Requests")
	gomock.InOrder(
		d.reader.EXPECT().GetProduct(ctx, "MED-001").Return(nil, transient),
		d.reader.EXPECT().GetProduct(ctx, "MED-001").Return(nil, transient),
		d.reader.EXPECT().GetProduct(ctx, "MED-001").Return(rawProduct("MED-001"), nil),
	)
	d.cache.EXPECT().PutEntry(ctx, "MED-001", gomock.Any()).Return(nil)

	product, err := d.svc.GetProduct(ctx, "MED-001")
	require.NoError(t, err)
	assert.Equal(t, "MED-001", product.ID)
}

func TestInventoryService_GetProduct_ExhaustedRetriesSurfaceLastError(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(nil, nil)
	transient := errors.New("getProduct: connection reset")
	d.reader.EXPECT().GetProduct(ctx, "MED-001").Return(nil, transient).Times(3)

	_, err := d.svc.GetProduct(ctx, "MED-001")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_002", appErr.Code)
	assert.Equal(t, transient.Error(), appErr.Message)
}

func TestInventoryService_GetProduct_MissingIDIsNotFound(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetEntry(ctx, "GHOST").Return(nil, nil)
	d.reader.EXPECT().GetProduct(ctx, "GHOST").
		Return(nil, errors.New("getProduct: execution reverted: Product does not exist")).
		Times(3)

	_, err := d.svc.GetProduct(ctx, "GHOST")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestInventoryService_GetProduct_ZeroedTupleIsNotFound(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetEntry(ctx, "GHOST").Return(nil, nil)
	d.reader.EXPECT().GetProduct(ctx, "GHOST").Return(&domain.RawProduct{}, nil)
	d.cache.EXPECT().PutEntry(ctx, "GHOST", gomock.Any()).Return(nil)

	_, err := d.svc.GetProduct(ctx, "GHOST")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestInventoryService_GetProduct_CacheReadFailureFallsThrough(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(nil, errors.New("redis down"))
	d.reader.EXPECT().GetProduct(ctx, "MED-001").Return(rawProduct("MED-001"), nil)
	d.cache.EXPECT().PutEntry(ctx, "MED-001", gomock.Any()).Return(errors.New("redis down"))

	product, err := d.svc.GetProduct(ctx, "MED-001")
	require.NoError(t, err)
	assert.Equal(t, "MED-001", product.ID)
}

func TestInventoryService_ListProducts_EnumeratesAndCaches(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetListing(ctx).Return(nil, false, nil)
	d.reader.EXPECT().GetProductCount(ctx).Return(uint64(2), nil)
	d.reader.EXPECT().GetProductIDs(ctx, uint64(0), uint64(listingPageSize)).Return([]string{"MED-001", "MED-002"}, nil)

	d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(nil, nil)
	d.reader.EXPECT().GetProduct(ctx, "MED-001").Return(rawProduct("MED-001"), nil)
	d.cache.EXPECT().PutEntry(ctx, "MED-001", gomock.Any()).Return(nil)

	d.cache.EXPECT().GetEntry(ctx, "MED-002").Return(nil, nil)
	d.reader.EXPECT().GetProduct(ctx, "MED-002").Return(rawProduct("MED-002"), nil)
	d.cache.EXPECT().PutEntry(ctx, "MED-002", gomock.Any()).Return(nil)

	d.cache.EXPECT().PutListing(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, products []domain.Product) error {
			assert.Len(t, products, 2)
			return nil
		})

	products, err := d.svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "MED-001", products[0].ID)
	assert.Equal(t, "MED-002", products[1].ID)
}

func TestInventoryService_ListProducts_ListingHitSkipsLedger(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	cached := []domain.Product{{ID: "MED-001", Exists: true}}
	d.cache.EXPECT().GetListing(ctx).Return(cached, true, nil)

	products, err := d.svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, products)
}

func TestInventoryService_ListProducts_SkipsProductsDeletedMidEnumeration(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetListing(ctx).Return(nil, false, nil)
	d.reader.EXPECT().GetProductCount(ctx).Return(uint64(2), nil)
	d.reader.EXPECT().GetProductIDs(ctx, uint64(0), uint64(listingPageSize)).Return([]string{"MED-001", "GHOST"}, nil)

	d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(nil, nil)
	d.reader.EXPECT().GetProduct(ctx, "MED-001").Return(rawProduct("MED-001"), nil)
	d.cache.EXPECT().PutEntry(ctx, "MED-001", gomock.Any()).Return(nil)

	d.cache.EXPECT().GetEntry(ctx, "GHOST").Return(nil, nil)
	d.reader.EXPECT().GetProduct(ctx, "GHOST").
		Return(nil, errors.New("getProduct: execution reverted: Product does not exist")).
		Times(3)

	d.cache.EXPECT().PutListing(ctx, gomock.Any()).Return(nil)

	products, err := d.svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "MED-001", products[0].ID)
}

func TestInventoryService_ListProducts_EmptyInventory(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetListing(ctx).Return(nil, false, nil)
	d.reader.EXPECT().GetProductCount(ctx).Return(uint64(0), nil)
	d.cache.EXPECT().PutListing(ctx, gomock.Any()).Return(nil)

	products, err := d.svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

// ==================== CheckStatus tests ====================

func TestInventoryService_CheckStatus_Sentences(t *testing.T) {
	tests := []struct {
		name     string
		status   uint8
		saleDate string
		want     string
	}{
		{
			name:   "en route",
			status: 0,
			want:   "Product MED-001 (Amoxicillin 500mg) is en route to Hanoi.",
		},
		{
			name:   "arrived",
			status: 1,
			want:   "Product MED-001 (Amoxicillin 500mg) has arrived at Hanoi.",
		},
		{
			name:     "sold",
			status:   2,
			saleDate: "2026-08-30",
			want:     "Product MED-001 (Amoxicillin 500mg) was sold on 2026-08-30 for 1200 units.",
		},
		{
			name:   "unknown code",
			status: 7,
			want:   "Product MED-001 (Amoxicillin 500mg) has an unknown status.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupInventoryService(t)
			defer d.ctrl.Finish()
			ctx := context.Background()

			raw := rawProduct("MED-001")
			raw.Status = tt.status
			raw.SaleDate = tt.saleDate
			product := raw.Decode()
			d.cache.EXPECT().GetEntry(ctx, "MED-001").Return(&domain.CacheEntry{
				Raw: raw, Product: &product, Decoded: true,
			}, nil)

			_, sentence, err := d.svc.CheckStatus(ctx, "MED-001")
			require.NoError(t, err)
			assert.Equal(t, tt.want, sentence)
		})
	}
}

func TestInventoryService_CheckStatus_NotFound(t *testing.T) {
	d := setupInventoryService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().GetEntry(ctx, "GHOST").Return(nil, nil)
	d.reader.EXPECT().GetProduct(ctx, "GHOST").
		Return(nil, errors.New("getProduct: execution reverted: Product does not exist")).
		Times(3)

	_, _, err := d.svc.CheckStatus(ctx, "GHOST")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
