package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Ledger LedgerConfig `mapstructure:"ledger"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Retry  RetryConfig  `mapstructure:"retry"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// LedgerConfig describes the remote contract and the signing credential.
// The private key and RPC endpoint are supplied out-of-band — there are no
// defaults for either.
type LedgerConfig struct {
	RPCURL          string        `mapstructure:"rpc_url"`
	ContractAddress string        `mapstructure:"contract_address"`
	PrivateKey      string        `mapstructure:"private_key"` // hex, 0x prefix optional
	GasLimitCap     uint64        `mapstructure:"gas_limit_cap"`
	ReceiptPoll     time.Duration `mapstructure:"receipt_poll"`
	ReceiptTimeout  time.Duration `mapstructure:"receipt_timeout"`
	ExplorerURL     string        `mapstructure:"explorer_url"` // block explorer base, /tx/<hash> appended
	HomeURL         string        `mapstructure:"home_url"`     // back-link on HTML pages
}

type CacheConfig struct {
	Backend string `mapstructure:"backend"` // memory, redis
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RetryConfig struct {
	Attempts int           `mapstructure:"attempts"`
	Delay    time.Duration `mapstructure:"delay"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CIG_ (Chain Inventory
// Gateway). Nested keys use underscore: CIG_LEDGER_RPC_URL, CIG_REDIS_HOST.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("ledger.rpc_url", "")
	v.SetDefault("ledger.contract_address", "")
	v.SetDefault("ledger.private_key", "")
	v.SetDefault("ledger.gas_limit_cap", 500000)
	v.SetDefault("ledger.receipt_poll", "2s")
	v.SetDefault("ledger.receipt_timeout", "90s")
	v.SetDefault("ledger.explorer_url", "https://sepolia-optimism.blockscout.com")
	v.SetDefault("ledger.home_url", "http://localhost:3000")
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("retry.attempts", 3)
	v.SetDefault("retry.delay", "2s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CIG_LEDGER_RPC_URL -> ledger.rpc_url
	v.SetEnvPrefix("CIG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the ledger section is complete enough to start.
func (c *Config) Validate() error {
	if c.Ledger.RPCURL == "" {
		return fmt.Errorf("ledger.rpc_url is required")
	}
	if c.Ledger.ContractAddress == "" {
		return fmt.Errorf("ledger.contract_address is required")
	}
	if c.Ledger.PrivateKey == "" {
		return fmt.Errorf("ledger.private_key is required")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be memory or redis, got %q", c.Cache.Backend)
	}
	return nil
}
