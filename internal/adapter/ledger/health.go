package ledger

import (
	"context"

	"chain-inventory-gateway/internal/core/ports"
)

// HealthCheck implements ports.HealthChecker for the ledger RPC endpoint.
type HealthCheck struct {
	node ports.NodeClient
}

// NewHealthCheck creates a ledger health checker.
func NewHealthCheck(node ports.NodeClient) *HealthCheck {
	return &HealthCheck{node: node}
}

// Ping checks node connectivity.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.node.ChainID(ctx)
	return err
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "ledger"
}
