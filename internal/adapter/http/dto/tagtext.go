package dto

import (
	"strconv"
	"strings"

	"chain-inventory-gateway/internal/core/ports"
	"chain-inventory-gateway/pkg/apperror"
)

// NFC tags carry pipe-delimited text payloads written by handheld writers.
// The grammar is positional; trailing fields may be omitted and take
// defaults, but a field that is present must be well-formed.

const (
	defaultCategory = "Others"
	defaultQuantity = int64(1)
	defaultIcon     = "BookReader"

	// noTagID is the sentinel the scanner sends when the tag has no uid.
	noTagID = "none"
)

// ParseRegisterTag parses a registration payload of the form
// ID|Name|BatchNo|ExpiryDate|Origin[|Category|Quantity] and derives the
// remaining registration fields: the sku from the id, the initial location
// from the origin, and the uid from the scanned tag id when one exists.
func ParseRegisterTag(text, tagID string) (ports.RegisterParams, error) {
	parts := strings.Split(text, "|")
	if len(parts) < 5 {
		return ports.RegisterParams{}, apperror.ErrInvalidTagText(
			"Invalid text format. Expected: ID|Name|BN|ExpDate|Origin[|Category|Quantity]")
	}

	category := defaultCategory
	if len(parts) > 5 {
		category = parts[5]
	}
	quantity := defaultQuantity
	if len(parts) > 6 {
		parsed, err := strconv.ParseInt(parts[6], 10, 64)
		if err != nil || parsed < 0 {
			return ports.RegisterParams{}, apperror.ErrInvalidTagText(
				"Invalid quantity. Must be a non-negative integer.")
		}
		quantity = parsed
	}

	id := parts[0]
	uid := tagID
	if uid == noTagID || uid == "" {
		uid = "UID-" + id
	}

	return ports.RegisterParams{
		ID:              id,
		Name:            parts[1],
		SKU:             "SKU-" + id,
		BatchNo:         parts[2],
		ExpiryDate:      parts[3],
		Origin:          parts[4],
		Location:        parts[4],
		UID:             uid,
		Category:        category,
		QuantityInStock: quantity,
		Status:          "en route",
		Icon:            defaultIcon,
	}, nil
}

// ParseLocationTag parses a location update payload of the form
// ID|Location|Price[|Status]. Status defaults to arrived when omitted.
func ParseLocationTag(text string) (ports.UpdateLocationParams, error) {
	parts := strings.Split(text, "|")
	if len(parts) < 3 {
		return ports.UpdateLocationParams{}, apperror.ErrInvalidTagText(
			"Invalid text format. Expected: ID|Location|Price|Status")
	}

	price, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || price < 0 {
		return ports.UpdateLocationParams{}, apperror.ErrInvalidTagText(
			"Invalid price. Must be a non-negative integer.")
	}

	status := "arrived"
	if len(parts) > 3 {
		status = parts[3]
	}

	return ports.UpdateLocationParams{
		ID:       parts[0],
		Location: parts[1],
		Price:    price,
		Status:   status,
	}, nil
}

// ParseSaleTag parses a sale payload of the form ID|SaleDate|Price.
func ParseSaleTag(text string) (ports.LogSaleParams, error) {
	parts := strings.Split(text, "|")
	if len(parts) < 3 {
		return ports.LogSaleParams{}, apperror.ErrInvalidTagText(
			"Invalid text format. Expected: ID|SaleDate|Price")
	}

	price, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || price < 0 {
		return ports.LogSaleParams{}, apperror.ErrInvalidTagText(
			"Invalid price. Must be a non-negative integer.")
	}

	return ports.LogSaleParams{
		ID:       parts[0],
		SaleDate: parts[1],
		Price:    price,
	}, nil
}
