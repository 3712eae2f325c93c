package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// RPC settings
	RPCUrl     string
	RPCTimeout time.Duration

	// API server settings
	APIAddr string
	APIKey  string
	DevMode bool

	// Quote defaults
	DefaultSlippageBps uint64

	// Redis settings
	RedisAddr    string
	PoolCacheTTL time.Duration

	// ClickHouse settings
	ClickHouseAddr     string
	ClickHouseDatabase string
	ClickHouseUsername string
	ClickHousePassword string
}

func Load() *Config {
	return &Config{
		// RPC
		RPCUrl:     getEnv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com"),
		RPCTimeout: getDurationEnv("RPC_TIMEOUT", 10*time.Second),

		// API
		APIAddr: getEnv("API_ADDR", ":8090"),
		APIKey:  getEnv("API_KEY", ""),
		DevMode: getBoolEnv("DEV_MODE", false),

		// Quotes
		DefaultSlippageBps: getUint64Env("DEFAULT_SLIPPAGE_BPS", 250),

		// Redis
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		PoolCacheTTL: getDurationEnv("POOL_CACHE_TTL", 5*time.Second),

		// ClickHouse
		ClickHouseAddr:     getEnv("CLICKHOUSE_ADDR", ""),
		ClickHouseDatabase: getEnv("CLICKHOUSE_DATABASE", "letscook"),
		ClickHouseUsername: getEnv("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword: getEnv("CLICKHOUSE_PASSWORD", ""),
	}
}

func (c *Config) Validate() error {
	if c.RPCUrl == "" {
		return fmt.Errorf("SOLANA_RPC_URL is required")
	}
	if c.APIAddr == "" {
		return fmt.Errorf("API_ADDR is required")
	}
	if c.DefaultSlippageBps > 10_000 {
		return fmt.Errorf("DEFAULT_SLIPPAGE_BPS must be at most 10000")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getUint64Env(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseUint(val, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
