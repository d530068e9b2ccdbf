package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"chain-inventory-gateway/config"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

const (
	defaultGasLimitCap    = 500000
	defaultReceiptPoll    = 2 * time.Second
	defaultReceiptTimeout = 90 * time.Second
)

// TxBuilder assembles, signs and submits state-mutating contract calls.
// It implements ports.TransactionSubmitter.
//
// The whole nonce-fetch-sign-submit sequence runs under one mutex: the
// nonce is account-scoped, not product-scoped, so concurrent submissions
// for different products would still race on it.
type TxBuilder struct {
	client         *Client
	gasLimitCap    uint64
	receiptPoll    time.Duration
	receiptTimeout time.Duration
	log            zerolog.Logger

	mu sync.Mutex
}

// NewTxBuilder creates a transaction builder sharing the client's node
// connection and signing identity.
func NewTxBuilder(client *Client, cfg config.LedgerConfig, log zerolog.Logger) *TxBuilder {
	b := &TxBuilder{
		client:         client,
		gasLimitCap:    cfg.GasLimitCap,
		receiptPoll:    cfg.ReceiptPoll,
		receiptTimeout: cfg.ReceiptTimeout,
		log:            log,
	}
	if b.gasLimitCap == 0 {
		b.gasLimitCap = defaultGasLimitCap
	}
	if b.receiptPoll <= 0 {
		b.receiptPoll = defaultReceiptPoll
	}
	if b.receiptTimeout <= 0 {
		b.receiptTimeout = defaultReceiptTimeout
	}
	return b
}

// Submit runs the full assembly sequence for one contract call: encode the
// payload, fetch the pending nonce, estimate gas, fetch the gas price,
// assemble and sign the envelope, send it, and await inclusion. A failure
// at any step aborts the whole operation; nothing is retried here, and no
// local state is mutated on failure.
func (b *TxBuilder) Submit(ctx context.Context, method string, args ...interface{}) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := inventoryABI.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("encode %s call: %w", method, err)
	}

	c := b.client

	nonce, err := c.node.PendingNonceAt(ctx, c.from)
	if err != nil {
		return "", fmt.Errorf("fetch nonce: %w", err)
	}

	estimate, err := c.node.EstimateGas(ctx, ethereum.CallMsg{From: c.from, To: &c.contract, Data: data})
	if err != nil {
		return "", fmt.Errorf("estimate gas: %w", err)
	}

	gasPrice, err := c.node.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch gas price: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      boundedGas(estimate, b.gasLimitCap),
		To:       &c.contract,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := c.node.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("submit transaction: %w", err)
	}

	hash := signed.Hash()
	b.log.Debug().
		Str("method", method).
		Uint64("nonce", nonce).
		Uint64("gas", signed.Gas()).
		Str("tx", hash.Hex()).
		Msg("transaction submitted")

	receipt, err := b.waitMined(ctx, hash)
	if err != nil {
		return "", err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return "", fmt.Errorf("transaction %s reverted", hash.Hex())
	}

	b.log.Info().
		Str("method", method).
		Str("tx", hash.Hex()).
		Str("block", receipt.BlockNumber.String()).
		Uint64("gas_used", receipt.GasUsed).
		Msg("transaction confirmed")

	return hash.Hex(), nil
}

// waitMined polls for the transaction receipt until it appears or the
// receipt timeout elapses. Receipt-not-found is the normal pending state;
// other poll errors are treated the same and retried until the deadline.
func (b *TxBuilder) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, b.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(b.receiptPoll)
	defer ticker.Stop()

	for {
		receipt, err := b.client.node.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("awaiting receipt for %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// boundedGas applies 1.2x headroom to the node's estimate, capped so a
// runaway estimate cannot produce an unbounded fee commitment.
func boundedGas(estimate, cap uint64) uint64 {
	withHeadroom := estimate + estimate/5
	if withHeadroom > cap {
		return cap
	}
	return withHeadroom
}
