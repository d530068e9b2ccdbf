package domain

import (
	"errors"
	"math/big"
)

// ErrProductNotFound signals that the ledger has no live entry for the
// requested id. An absent product is an expected business outcome, not a
// system fault, so it is a sentinel rather than an apperror.
var ErrProductNotFound = errors.New("product not found")

// Product is the decoded, named-field representation of one inventory item.
// JSON keys follow the contract expected by the frontend table.
type Product struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SKU             string `json:"sku"`
	BatchNo         string `json:"batchNo"`
	ExpiryDate      string `json:"expiryDate"`
	Origin          string `json:"origin"`
	Location        string `json:"location"`
	Sold            bool   `json:"sold"`
	SaleDate        string `json:"saleDate"`
	UID             string `json:"uid"`
	Price           int64  `json:"price"`
	Category        string `json:"category"`
	QuantityInStock int64  `json:"quantityInStock"`
	Status          Status `json:"status"`
	Icon            string `json:"icon"`
	Exists          bool   `json:"exists"`
}

// RawProduct is the positional getProduct tuple from the contract, typed
// field by field at the decode boundary. Price and quantity stay as
// uint256 words until Decode narrows them.
type RawProduct struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	SKU             string   `json:"sku"`
	BatchNo         string   `json:"batchNo"`
	ExpiryDate      string   `json:"expiryDate"`
	Origin          string   `json:"origin"`
	Location        string   `json:"location"`
	Sold            bool     `json:"sold"`
	SaleDate        string   `json:"saleDate"`
	UID             string   `json:"uid"`
	Price           *big.Int `json:"price"`
	Category        string   `json:"category"`
	QuantityInStock *big.Int `json:"quantityInStock"`
	Status          uint8    `json:"status"`
	Icon            string   `json:"icon"`
}

// Decode turns the raw tuple into a Product. A successful getProduct call
// implies the entry exists; callers treat an empty decoded id as a tombstone.
func (r *RawProduct) Decode() Product {
	return Product{
		ID:              r.ID,
		Name:            r.Name,
		SKU:             r.SKU,
		BatchNo:         r.BatchNo,
		ExpiryDate:      r.ExpiryDate,
		Origin:          r.Origin,
		Location:        r.Location,
		Sold:            r.Sold,
		SaleDate:        r.SaleDate,
		UID:             r.UID,
		Price:           bigToInt64(r.Price),
		Category:        r.Category,
		QuantityInStock: bigToInt64(r.QuantityInStock),
		Status:          StatusFromCode(r.Status),
		Icon:            r.Icon,
		Exists:          true,
	}
}

// CacheEntry wraps a per-id cache slot. Raw is always present; Product is
// filled in once the first caller needs the decoded form.
type CacheEntry struct {
	Raw     *RawProduct `json:"raw"`
	Product *Product    `json:"product,omitempty"`
	Decoded bool        `json:"decoded"`
}

func bigToInt64(v *big.Int) int64 {
	if v == nil || !v.IsInt64() {
		return 0
	}
	return v.Int64()
}
