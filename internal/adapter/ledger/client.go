package ledger

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"chain-inventory-gateway/config"
	"chain-inventory-gateway/internal/core/domain"
	"chain-inventory-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Client executes read-only calls against the inventory contract and holds
// the signing identity shared with the transaction builder. It implements
// ports.ContractReader.
type Client struct {
	node     ports.NodeClient
	contract common.Address
	key      *ecdsa.PrivateKey
	from     common.Address
	chainID  *big.Int
	log      zerolog.Logger
}

// Dial connects to the configured RPC endpoint and builds a Client.
func Dial(ctx context.Context, cfg config.LedgerConfig, log zerolog.Logger) (*Client, error) {
	node, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing ledger rpc: %w", err)
	}
	return New(ctx, cfg, node, log)
}

// New builds a Client on an existing node connection. The chain id is
// fetched once here; it never changes for the lifetime of the process.
func New(ctx context.Context, cfg config.LedgerConfig, node ports.NodeClient, log zerolog.Logger) (*Client, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", cfg.ContractAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parsing signing key: %w", err)
	}

	chainID, err := node.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching chain id: %w", err)
	}

	c := &Client{
		node:     node,
		contract: common.HexToAddress(cfg.ContractAddress),
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		chainID:  chainID,
		log:      log,
	}

	log.Info().
		Str("account", c.from.Hex()).
		Str("contract", c.contract.Hex()).
		Str("chain_id", chainID.String()).
		Msg("ledger client ready")

	return c, nil
}

// Address returns the signing account address.
func (c *Client) Address() common.Address {
	return c.from
}

// Node returns the underlying node client.
func (c *Client) Node() ports.NodeClient {
	return c.node
}

// GetProduct fetches and types the raw product tuple for one id.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.RawProduct, error) {
	out, err := c.call(ctx, "getProduct", id)
	if err != nil {
		return nil, err
	}
	return unpackRawProduct(out)
}

// GetProductCount returns the number of live product ids.
func (c *Client) GetProductCount(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, "getProductCount")
	if err != nil {
		return 0, err
	}
	count, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("getProductCount: expected *big.Int, got %T", out[0])
	}
	return count.Uint64(), nil
}

// GetProductIDs enumerates product ids in [start, start+limit).
func (c *Client) GetProductIDs(ctx context.Context, start, limit uint64) ([]string, error) {
	out, err := c.call(ctx, "getProductIds", new(big.Int).SetUint64(start), new(big.Int).SetUint64(limit))
	if err != nil {
		return nil, err
	}
	ids, ok := out[0].([]string)
	if !ok {
		return nil, fmt.Errorf("getProductIds: expected []string, got %T", out[0])
	}
	return ids, nil
}

// VerifyAccount checks contract ownership and account balance at startup.
// Mismatches are operator mistakes worth flagging early, but none of them
// should stop the service, so everything here is warn-level at worst.
func (c *Client) VerifyAccount(ctx context.Context) {
	if out, err := c.call(ctx, "owner"); err != nil {
		c.log.Warn().Err(err).Msg("could not check contract ownership")
	} else if owner, ok := out[0].(common.Address); ok {
		if owner != c.from {
			c.log.Warn().
				Str("owner", owner.Hex()).
				Str("account", c.from.Hex()).
				Msg("signing account does not match contract owner")
		} else {
			c.log.Info().Str("owner", owner.Hex()).Msg("contract ownership verified")
		}
	}

	balance, err := c.node.BalanceAt(ctx, c.from, nil)
	if err != nil {
		c.log.Warn().Err(err).Msg("could not check account balance")
		return
	}
	if balance.Sign() == 0 {
		c.log.Warn().Str("account", c.from.Hex()).Msg("account balance is zero, writes will fail until funded")
		return
	}
	c.log.Info().Str("balance_wei", balance.String()).Msg("account balance checked")
}

// call packs a read call, executes it, and unpacks the outputs.
func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := inventoryABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("encode %s call: %w", method, err)
	}

	msg := ethereum.CallMsg{From: c.from, To: &c.contract, Data: data}
	raw, err := c.node.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	out, err := inventoryABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s result: %w", method, err)
	}
	return out, nil
}
