package integration

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"chain-inventory-gateway/internal/core/domain"
)

// fakeLedger simulates the inventory contract's state machine behind the
// ContractReader and TransactionSubmitter ports, mirroring the deployed
// contract's require() semantics: duplicate registration and reads of
// missing ids revert with the contract's revert messages.
type fakeLedger struct {
	mu       sync.Mutex
	products map[string]*domain.RawProduct
	order    []string
	txSeq    int

	// readCalls counts GetProduct invocations per id, used to assert cache
	// behavior from outside.
	readCalls map[string]int

	// failNextSubmit forces the next Submit to fail without state change.
	failNextSubmit error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		products:  make(map[string]*domain.RawProduct),
		readCalls: make(map[string]int),
	}
}

func (f *fakeLedger) GetProduct(_ context.Context, id string) (*domain.RawProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.readCalls[id]++
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("getProduct: execution reverted: Product does not exist")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeLedger) GetProductCount(_ context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.order)), nil
}

func (f *fakeLedger) GetProductIDs(_ context.Context, start, limit uint64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if start >= uint64(len(f.order)) {
		return nil, nil
	}
	end := start + limit
	if end > uint64(len(f.order)) {
		end = uint64(len(f.order))
	}
	out := make([]string, end-start)
	copy(out, f.order[start:end])
	return out, nil
}

func (f *fakeLedger) Submit(_ context.Context, method string, args ...interface{}) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNextSubmit != nil {
		err := f.failNextSubmit
		f.failNextSubmit = nil
		return "", err
	}

	switch method {
	case "registerProduct":
		id := args[0].(string)
		if _, ok := f.products[id]; ok {
			return "", fmt.Errorf("execution reverted: Product already exists")
		}
		f.products[id] = &domain.RawProduct{
			ID:              id,
			Name:            args[1].(string),
			SKU:             args[2].(string),
			BatchNo:         args[3].(string),
			ExpiryDate:      args[4].(string),
			Origin:          args[5].(string),
			Location:        args[6].(string),
			UID:             args[7].(string),
			Category:        args[8].(string),
			QuantityInStock: args[9].(*big.Int),
			Status:          args[10].(uint8),
			Icon:            args[11].(string),
			Price:           big.NewInt(0),
		}
		f.order = append(f.order, id)

	case "updateLocation":
		id := args[0].(string)
		p, ok := f.products[id]
		if !ok {
			return "", fmt.Errorf("execution reverted: Product does not exist")
		}
		p.Location = args[1].(string)
		p.Price = args[2].(*big.Int)
		p.Status = args[3].(uint8)

	case "logSale":
		id := args[0].(string)
		p, ok := f.products[id]
		if !ok {
			return "", fmt.Errorf("execution reverted: Product does not exist")
		}
		p.SaleDate = args[1].(string)
		p.Price = args[2].(*big.Int)
		p.Sold = true
		p.Status = 2

	case "deleteProduct":
		id := args[0].(string)
		if _, ok := f.products[id]; !ok {
			return "", fmt.Errorf("execution reverted: Product does not exist")
		}
		delete(f.products, id)
		for i, existing := range f.order {
			if existing == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}

	default:
		return "", fmt.Errorf("unknown method %s", method)
	}

	f.txSeq++
	return fmt.Sprintf("0x%064x", f.txSeq), nil
}

func (f *fakeLedger) reads(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readCalls[id]
}
