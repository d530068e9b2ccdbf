package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the human-readable lifecycle state of a product.
type Status string

const (
	StatusEnRoute Status = "en route"
	StatusArrived Status = "arrived"
	StatusSold    Status = "sold"
	StatusUnknown Status = "unknown"
)

// On-chain enum values of the Inventory contract's Status type.
const (
	statusCodeEnRoute uint8 = 0
	statusCodeArrived uint8 = 1
	statusCodeSold    uint8 = 2
)

// ErrInvalidStatus marks a status string that has no on-chain encoding.
var ErrInvalidStatus = errors.New("invalid status")

// ParseStatus maps a status string to its on-chain enum value.
// Matching is case-insensitive. Values we construct must be well-formed,
// so unrecognized strings are rejected with ErrInvalidStatus.
func ParseStatus(s string) (uint8, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusEnRoute:
		return statusCodeEnRoute, nil
	case StatusArrived:
		return statusCodeArrived, nil
	case StatusSold:
		return statusCodeSold, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// StatusFromCode maps an on-chain enum value back to its status string.
// The ledger is the source of truth: values outside the known enum are
// reported as StatusUnknown instead of failing the read.
func StatusFromCode(code uint8) Status {
	switch code {
	case statusCodeEnRoute:
		return StatusEnRoute
	case statusCodeArrived:
		return StatusArrived
	case statusCodeSold:
		return StatusSold
	default:
		return StatusUnknown
	}
}
