package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds process settings. Values come from an optional YAML file
// and are overridden by environment variables of the same name.
type Config struct {
	Port         string        `yaml:"PORT"`
	ModelPath    string        `yaml:"MODEL_PATH"`
	StoreDriver  string        `yaml:"STORE_DRIVER"`
	DBPath       string        `yaml:"DB_PATH"`
	DatabaseURL  string        `yaml:"DATABASE_URL"`
	RedisAddr    string        `yaml:"REDIS_ADDR"`
	CacheTTL     time.Duration `yaml:"-"`
	CacheTTLStr  string        `yaml:"CACHE_TTL"`
	HistoryLimit int           `yaml:"HISTORY_LIMIT"`
}

const (
	StoreNone     = "none"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from path (may be empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:         "8080",
		ModelPath:    "data/flight_price_model.json",
		StoreDriver:  StoreNone,
		DBPath:       "data/predictions.db",
		CacheTTLStr:  "24h",
		HistoryLimit: 50,
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	cfg.Port = Get("PORT", cfg.Port)
	cfg.ModelPath = Get("MODEL_PATH", cfg.ModelPath)
	cfg.StoreDriver = strings.ToLower(Get("STORE_DRIVER", cfg.StoreDriver))
	cfg.DBPath = Get("DB_PATH", cfg.DBPath)
	cfg.DatabaseURL = Get("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisAddr = Get("REDIS_ADDR", cfg.RedisAddr)
	cfg.CacheTTLStr = Get("CACHE_TTL", cfg.CacheTTLStr)

	if v := Get("HISTORY_LIMIT", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("load config: HISTORY_LIMIT %q: %w", v, err)
		}
		cfg.HistoryLimit = n
	}

	ttl, err := time.ParseDuration(cfg.CacheTTLStr)
	if err != nil {
		return Config{}, fmt.Errorf("load config: CACHE_TTL %q: %w", cfg.CacheTTLStr, err)
	}
	cfg.CacheTTL = ttl

	switch cfg.StoreDriver {
	case StoreNone, StoreSQLite:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("load config: DATABASE_URL is required for STORE_DRIVER=%s", cfg.StoreDriver)
		}
	default:
		return Config{}, fmt.Errorf("load config: unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}
