// Package config loads application configuration from an optional YAML file
// and POLYLAB_-prefixed environment variables, applies defaults, and
// validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Paginator PaginatorConfig `mapstructure:"paginator"`
	Scan      ScanConfig      `mapstructure:"scan"`
	Arb       ArbConfig       `mapstructure:"arb"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// APIConfig configures the Polymarket API endpoints.
type APIConfig struct {
	GammaURL   string        `mapstructure:"gamma_url"`
	DataURL    string        `mapstructure:"data_url"`
	WSURL      string        `mapstructure:"ws_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
}

// PaginatorConfig bounds the concurrent page fetches.
type PaginatorConfig struct {
	MarketPageSize      int `mapstructure:"market_page_size"`
	TradePageSize       int `mapstructure:"trade_page_size"`
	Concurrency         int `mapstructure:"concurrency"`
	MaxConsecutiveEmpty int `mapstructure:"max_consecutive_empty"`
}

// ScanConfig parameterizes wallet discovery and the insider scan.
type ScanConfig struct {
	SampleSize  int `mapstructure:"sample_size"`
	TopWallets  int `mapstructure:"top_wallets"`
	MinResolved int `mapstructure:"min_resolved"`
}

// ArbConfig parameterizes the arbitrage scan.
type ArbConfig struct {
	Threshold float64 `mapstructure:"threshold"`
}

// MetricsConfig configures the optional Prometheus endpoint.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // empty disables the endpoint
	Path string `mapstructure:"path"`
}

// Load reads configuration from path (optional; "" means look for
// polylab.yaml in the working directory) with environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("polylab")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("POLYLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config file is fine; an explicit path is not.
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
