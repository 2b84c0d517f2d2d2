package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values defaults cannot repair.
func (c *Config) Validate() error {
	var problems []string

	if !strings.HasPrefix(c.API.GammaURL, "http") {
		problems = append(problems, fmt.Sprintf("api.gamma_url %q must be an http(s) URL", c.API.GammaURL))
	}
	if !strings.HasPrefix(c.API.DataURL, "http") {
		problems = append(problems, fmt.Sprintf("api.data_url %q must be an http(s) URL", c.API.DataURL))
	}
	if !strings.HasPrefix(c.API.WSURL, "ws") {
		problems = append(problems, fmt.Sprintf("api.ws_url %q must be a ws(s) URL", c.API.WSURL))
	}

	if c.Paginator.MarketPageSize < 0 {
		problems = append(problems, "paginator.market_page_size must be positive")
	}
	if c.Paginator.TradePageSize < 0 {
		problems = append(problems, "paginator.trade_page_size must be positive")
	}
	if c.Paginator.Concurrency < 0 {
		problems = append(problems, "paginator.concurrency must be positive")
	}

	if c.Scan.SampleSize < 0 {
		problems = append(problems, "scan.sample_size must be positive")
	}
	if c.Scan.TopWallets < 0 {
		problems = append(problems, "scan.top_wallets must be positive")
	}

	if c.Arb.Threshold < 0 || c.Arb.Threshold > 2 {
		problems = append(problems, fmt.Sprintf("arb.threshold %g out of range (0, 2]", c.Arb.Threshold))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
