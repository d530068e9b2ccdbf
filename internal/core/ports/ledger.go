package ports

import (
	"context"
	"math/big"

	"chain-inventory-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// NodeClient is the subset of the Ethereum JSON-RPC surface the gateway
// touches. *ethclient.Client satisfies it; tests substitute a mock. Calls
// may fail transiently (network timeout, node rate limiting) or permanently
// (reverted transaction, invalid state); timeouts are the node client's own.
type NodeClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// ContractReader executes read-only calls against the inventory contract.
// All methods are idempotent and safe to wrap in the retry policy.
type ContractReader interface {
	GetProduct(ctx context.Context, id string) (*domain.RawProduct, error)
	GetProductCount(ctx context.Context) (uint64, error)
	GetProductIDs(ctx context.Context, start, limit uint64) ([]string, error)
}

// TransactionSubmitter assembles, signs and submits one state-mutating
// contract call, returning the transaction hash once the ledger confirms
// inclusion. Implementations must serialize concurrent submissions: the
// nonce is account-scoped, so two interleaved nonce-fetch-sign-submit
// sequences would race. Submit is never retried automatically.
type TransactionSubmitter interface {
	Submit(ctx context.Context, method string, args ...interface{}) (string, error)
}
