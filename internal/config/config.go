// Package config loads corectl's runtime configuration: the rate feed,
// cache, and narrative generator endpoints the structuring core is wired
// against. It follows an environment-keyed YAML file shape, with
// environment-variable overrides for the values most likely to differ
// between a laptop and a deployed environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is corectl's top-level configuration.
type Config struct {
	Environment string         `yaml:"environment"`
	Logging     LoggingConfig  `yaml:"logging"`
	RateFeed    RateFeedConfig `yaml:"rate_feed"`
	Redis       RedisConfig    `yaml:"redis"`
	Narrative   NarrativeConfig `yaml:"narrative"`
	Database    DatabaseConfig `yaml:"database"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RateFeedConfig points at the external base-rate feed.
type RateFeedConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// RedisConfig configures the rate-source cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// NarrativeConfig points at the narrative/JSON generation capability used by
// the narrative enhancer and compliance narrative review.
type NarrativeConfig struct {
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// DatabaseConfig configures the optional Postgres persistence adapter.
type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// Load reads configPath (if it exists) and applies environment-variable
// overrides on top. A missing file is not an error: Load falls back to
// defaults so corectl can run against a bare environment.
func Load(configPath string) (*Config, error) {
	cfg := defaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	overrideWithEnv(cfg)

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Environment: "development",
		Logging:     LoggingConfig{Level: "info"},
		RateFeed:    RateFeedConfig{Timeout: 5 * time.Second},
		Redis:       RedisConfig{DB: 0},
		Narrative:   NarrativeConfig{Timeout: 15 * time.Second},
		Database:    DatabaseConfig{MaxOpenConns: 10, MaxIdleConns: 5, ConnMaxLifetime: 5 * time.Minute},
	}
}

func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RATE_FEED_URL"); v != "" {
		cfg.RateFeed.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = n
		}
	}
	if v := os.Getenv("NARRATIVE_ENDPOINT"); v != "" {
		cfg.Narrative.Endpoint = v
	}
	if v := os.Getenv("NARRATIVE_API_KEY"); v != "" {
		cfg.Narrative.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
}
