// Package gamma provides a client for the Polymarket Gamma and Data APIs.
// Both are offset-paginated; full result sets are materialized through the
// bounded concurrent paginator.
package gamma

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"polymarket-wallet-lab/internal/paginator"
)

// Default configuration values.
const (
	DefaultGammaURL = "https://gamma-api.polymarket.com"
	DefaultDataURL  = "https://data-api.polymarket.com"

	DefaultTimeout      = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 1 * time.Second

	DefaultMarketPageSize = 100
	DefaultTradePageSize  = 500
	DefaultConcurrency    = 10
)

// Client accesses the Gamma API (markets) and Data API (trades).
type Client struct {
	gammaURL string
	dataURL  string

	httpClient   *http.Client
	logger       *zap.Logger
	maxRetries   int
	retryBackoff time.Duration

	marketPageSize      int
	tradePageSize       int
	concurrency         int
	maxConsecutiveEmpty int
	observer            func(kind string) paginator.Observer
}

// Record kinds passed to observer factories.
const (
	KindMarkets = "markets"
	KindTrades  = "trades"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithGammaURL overrides the Gamma API base URL.
func WithGammaURL(u string) ClientOption {
	return func(c *Client) { c.gammaURL = u }
}

// WithDataURL overrides the Data API base URL.
func WithDataURL(u string) ClientOption {
	return func(c *Client) { c.dataURL = u }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRetries sets the per-request retry configuration.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithPageSizes sets the per-page record counts for market and trade fetches.
func WithPageSizes(markets, trades int) ClientOption {
	return func(c *Client) {
		c.marketPageSize = markets
		c.tradePageSize = trades
	}
}

// WithConcurrency bounds the number of in-flight page fetches.
func WithConcurrency(n int) ClientOption {
	return func(c *Client) { c.concurrency = n }
}

// WithMaxConsecutiveEmpty halts a paginated fetch after this many empty or
// failed pages in a row.
func WithMaxConsecutiveEmpty(n int) ClientOption {
	return func(c *Client) { c.maxConsecutiveEmpty = n }
}

// WithObserver attaches one page progress observer to every paginated fetch
// regardless of record kind.
func WithObserver(obs paginator.Observer) ClientOption {
	return func(c *Client) {
		c.observer = func(string) paginator.Observer { return obs }
	}
}

// WithObserverFactory attaches a per-kind page progress observer, e.g. to
// label metrics by record kind.
func WithObserverFactory(f func(kind string) paginator.Observer) ClientOption {
	return func(c *Client) { c.observer = f }
}

// NewClient creates a Polymarket API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		gammaURL:       DefaultGammaURL,
		dataURL:        DefaultDataURL,
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		logger:         zap.NewNop(),
		maxRetries:     DefaultMaxRetries,
		retryBackoff:   DefaultRetryBackoff,
		marketPageSize: DefaultMarketPageSize,
		tradePageSize:  DefaultTradePageSize,
		concurrency:    DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) paginatorOptions(kind string, pageSize, maxRecords int) paginator.Options {
	opts := paginator.Options{
		PageSize:            pageSize,
		Concurrency:         c.concurrency,
		MaxRecords:          maxRecords,
		MaxConsecutiveEmpty: c.maxConsecutiveEmpty,
	}
	if c.observer != nil {
		opts.Observer = c.observer(kind)
	}
	return opts
}
