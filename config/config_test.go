package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, uint64(500000), cfg.Ledger.GasLimitCap)
	assert.Equal(t, 2*time.Second, cfg.Ledger.ReceiptPoll)
	assert.Equal(t, 90*time.Second, cfg.Ledger.ReceiptTimeout)
	assert.Equal(t, "https://sepolia-optimism.blockscout.com", cfg.Ledger.ExplorerURL)

	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, 2*time.Second, cfg.Retry.Delay)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 4000
  mode: "release"
ledger:
  rpc_url: "https://opt-sepolia.example.com/v2/key"
  contract_address: "0x1111111111111111111111111111111111111111"
  private_key: "0xabc123"
  gas_limit_cap: 600000
  receipt_poll: "1s"
cache:
  backend: "redis"
redis:
  host: "redis.example.com"
  port: 6380
  db: 2
retry:
  attempts: 5
  delay: "500ms"
log:
  level: "debug"
  pretty: true
`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.Equal(t, "https://opt-sepolia.example.com/v2/key", cfg.Ledger.RPCURL)
	assert.Equal(t, uint64(600000), cfg.Ledger.GasLimitCap)
	assert.Equal(t, time.Second, cfg.Ledger.ReceiptPoll)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis.example.com:6380", cfg.Redis.Addr())
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, 5, cfg.Retry.Attempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.Delay)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CIG_SERVER_PORT", "9999")
	t.Setenv("CIG_LEDGER_GAS_LIMIT_CAP", "450000")
	t.Setenv("CIG_CACHE_BACKEND", "redis")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, uint64(450000), cfg.Ledger.GasLimitCap)
	assert.Equal(t, "redis", cfg.Cache.Backend)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Ledger: LedgerConfig{
				RPCURL:          "https://node.example.com",
				ContractAddress: "0x1111111111111111111111111111111111111111",
				PrivateKey:      "abc",
			},
			Cache: CacheConfig{Backend: "memory"},
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.Ledger.RPCURL = ""
	assert.ErrorContains(t, cfg.Validate(), "rpc_url")

	cfg = base()
	cfg.Ledger.ContractAddress = ""
	assert.ErrorContains(t, cfg.Validate(), "contract_address")

	cfg = base()
	cfg.Ledger.PrivateKey = ""
	assert.ErrorContains(t, cfg.Validate(), "private_key")

	cfg = base()
	cfg.Cache.Backend = "memcached"
	assert.ErrorContains(t, cfg.Validate(), "cache.backend")
}
