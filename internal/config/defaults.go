package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultGammaURL = "https://gamma-api.polymarket.com"
	DefaultDataURL  = "https://data-api.polymarket.com"
	DefaultWSURL    = "wss://ws-subscriptions-clob.polymarket.com/ws/market"

	DefaultAPITimeout = 30 * time.Second
	DefaultMaxRetries = 3

	DefaultMarketPageSize      = 100
	DefaultTradePageSize       = 500
	DefaultConcurrency         = 10
	DefaultMaxConsecutiveEmpty = 10

	DefaultSampleSize  = 10000
	DefaultTopWallets  = 50
	DefaultMinResolved = 5

	DefaultArbThreshold = 0.99

	DefaultMetricsPath = "/metrics"
)

func (c *Config) applyDefaults() {
	if c.API.GammaURL == "" {
		c.API.GammaURL = DefaultGammaURL
	}
	if c.API.DataURL == "" {
		c.API.DataURL = DefaultDataURL
	}
	if c.API.WSURL == "" {
		c.API.WSURL = DefaultWSURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	if c.Paginator.MarketPageSize == 0 {
		c.Paginator.MarketPageSize = DefaultMarketPageSize
	}
	if c.Paginator.TradePageSize == 0 {
		c.Paginator.TradePageSize = DefaultTradePageSize
	}
	if c.Paginator.Concurrency == 0 {
		c.Paginator.Concurrency = DefaultConcurrency
	}
	if c.Paginator.MaxConsecutiveEmpty == 0 {
		c.Paginator.MaxConsecutiveEmpty = DefaultMaxConsecutiveEmpty
	}

	if c.Scan.SampleSize == 0 {
		c.Scan.SampleSize = DefaultSampleSize
	}
	if c.Scan.TopWallets == 0 {
		c.Scan.TopWallets = DefaultTopWallets
	}
	if c.Scan.MinResolved == 0 {
		c.Scan.MinResolved = DefaultMinResolved
	}

	if c.Arb.Threshold == 0 {
		c.Arb.Threshold = DefaultArbThreshold
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
