package ledger

import (
	"fmt"
	"math/big"
	"strings"

	"chain-inventory-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI of the deployed Inventory contract.
const inventoryABIJSON = `[
{"inputs":[],"stateMutability":"nonpayable","type":"constructor"},
{"anonymous":false,"inputs":[{"indexed":false,"internalType":"string","name":"id","type":"string"},{"indexed":false,"internalType":"string","name":"location","type":"string"},{"indexed":false,"internalType":"uint256","name":"price","type":"uint256"},{"indexed":false,"internalType":"enum Inventory.Status","name":"status","type":"uint8"}],"name":"LocationUpdated","type":"event"},
{"anonymous":false,"inputs":[{"indexed":false,"internalType":"string","name":"id","type":"string"}],"name":"ProductDeleted","type":"event"},
{"anonymous":false,"inputs":[{"indexed":false,"internalType":"string","name":"id","type":"string"},{"indexed":false,"internalType":"string","name":"name","type":"string"},{"indexed":false,"internalType":"string","name":"sku","type":"string"},{"indexed":false,"internalType":"string","name":"batchNo","type":"string"},{"indexed":false,"internalType":"string","name":"expiryDate","type":"string"},{"indexed":false,"internalType":"string","name":"origin","type":"string"},{"indexed":false,"internalType":"string","name":"location","type":"string"},{"indexed":false,"internalType":"string","name":"uid","type":"string"},{"indexed":false,"internalType":"string","name":"category","type":"string"},{"indexed":false,"internalType":"uint256","name":"quantityInStock","type":"uint256"},{"indexed":false,"internalType":"enum Inventory.Status","name":"status","type":"uint8"},{"indexed":false,"internalType":"string","name":"icon","type":"string"}],"name":"ProductRegistered","type":"event"},
{"anonymous":false,"inputs":[{"indexed":false,"internalType":"string","name":"id","type":"string"},{"indexed":false,"internalType":"string","name":"saleDate","type":"string"},{"indexed":false,"internalType":"uint256","name":"price","type":"uint256"},{"indexed":false,"internalType":"bool","name":"sold","type":"bool"}],"name":"SaleLogged","type":"event"},
{"inputs":[{"internalType":"string","name":"id","type":"string"}],"name":"deleteProduct","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"internalType":"string","name":"id","type":"string"}],"name":"getProduct","outputs":[{"internalType":"string","name":"","type":"string"},{"internalType":"string","name":"","type":"string"},{"internalType":"string","name":"","type":"string"},{"internalType":"string","name":"","type":"string"},{"internalType":"string","name":"","type":"string"},{"internalType":"string","name":"","type":"string"},{"internalType":"string","name":"","type":"string"},{"internalType":"bool","name":"","type":"bool"},{"internalType":"string","name":"","type":"string"},{"internalType":"string","name":"","type":"string"},{"internalType":"uint256","name":"","type":"uint256"},{"internalType":"string","name":"","type":"string"},{"internalType":"uint256","name":"","type":"uint256"},{"internalType":"enum Inventory.Status","name":"","type":"uint8"},{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"getProductCount","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"start","type":"uint256"},{"internalType":"uint256","name":"limit","type":"uint256"}],"name":"getProductIds","outputs":[{"internalType":"string[]","name":"","type":"string[]"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"string","name":"id","type":"string"},{"internalType":"string","name":"saleDate","type":"string"},{"internalType":"uint256","name":"price","type":"uint256"}],"name":"logSale","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"string","name":"id","type":"string"},{"internalType":"string","name":"name","type":"string"},{"internalType":"string","name":"sku","type":"string"},{"internalType":"string","name":"batchNo","type":"string"},{"internalType":"string","name":"expiryDate","type":"string"},{"internalType":"string","name":"origin","type":"string"},{"internalType":"string","name":"location","type":"string"},{"internalType":"string","name":"uid","type":"string"},{"internalType":"string","name":"category","type":"string"},{"internalType":"uint256","name":"quantityInStock","type":"uint256"},{"internalType":"enum Inventory.Status","name":"status","type":"uint8"},{"internalType":"string","name":"icon","type":"string"}],"name":"registerProduct","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"internalType":"string","name":"id","type":"string"},{"internalType":"string","name":"location","type":"string"},{"internalType":"uint256","name":"price","type":"uint256"},{"internalType":"enum Inventory.Status","name":"status","type":"uint8"}],"name":"updateLocation","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

var inventoryABI = mustParseABI(inventoryABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parsing inventory contract ABI: %v", err))
	}
	return parsed
}

// getProduct returns a 15-element positional tuple. Decoding is explicit
// and fixed-arity, validated once here at the boundary.
const productTupleArity = 15

// unpackRawProduct types the positional getProduct outputs field by field.
func unpackRawProduct(out []interface{}) (*domain.RawProduct, error) {
	if len(out) != productTupleArity {
		return nil, fmt.Errorf("getProduct tuple: expected %d fields, got %d", productTupleArity, len(out))
	}

	r := tupleReader{out: out}
	raw := &domain.RawProduct{
		ID:              r.str(0),
		Name:            r.str(1),
		SKU:             r.str(2),
		BatchNo:         r.str(3),
		ExpiryDate:      r.str(4),
		Origin:          r.str(5),
		Location:        r.str(6),
		Sold:            r.boolean(7),
		SaleDate:        r.str(8),
		UID:             r.str(9),
		Price:           r.bigInt(10),
		Category:        r.str(11),
		QuantityInStock: r.bigInt(12),
		Status:          r.enum(13),
		Icon:            r.str(14),
	}
	if r.err != nil {
		return nil, fmt.Errorf("getProduct tuple: %w", r.err)
	}
	return raw, nil
}

// tupleReader accumulates the first type mismatch instead of panicking on
// a malformed node response.
type tupleReader struct {
	out []interface{}
	err error
}

func (r *tupleReader) fail(i int, want string) {
	if r.err == nil {
		r.err = fmt.Errorf("field %d: expected %s, got %T", i, want, r.out[i])
	}
}

func (r *tupleReader) str(i int) string {
	v, ok := r.out[i].(string)
	if !ok {
		r.fail(i, "string")
	}
	return v
}

func (r *tupleReader) boolean(i int) bool {
	v, ok := r.out[i].(bool)
	if !ok {
		r.fail(i, "bool")
	}
	return v
}

func (r *tupleReader) bigInt(i int) *big.Int {
	v, ok := r.out[i].(*big.Int)
	if !ok {
		r.fail(i, "*big.Int")
	}
	return v
}

func (r *tupleReader) enum(i int) uint8 {
	v, ok := r.out[i].(uint8)
	if !ok {
		r.fail(i, "uint8")
	}
	return v
}
