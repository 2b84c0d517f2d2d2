package gamma

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"polymarket-wallet-lab/internal/domain"
	"polymarket-wallet-lab/internal/paginator"
)

// fetchTradePage retrieves one page of trades, optionally filtered to a
// single wallet.
func (c *Client) fetchTradePage(ctx context.Context, user string, offset, limit int) ([]domain.Trade, error) {
	query := url.Values{}
	if user != "" {
		query.Set("user", user)
	}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var trades []domain.Trade
	if err := c.get(ctx, c.dataURL, "/trades", query, &trades); err != nil {
		return nil, fmt.Errorf("get trades page at offset %d: %w", offset, err)
	}

	return trades, nil
}

// WalletTrades fetches the full trade history for one wallet.
func (c *Client) WalletTrades(ctx context.Context, wallet string) ([]domain.Trade, error) {
	fetch := func(ctx context.Context, offset, limit int) ([]domain.Trade, error) {
		return c.fetchTradePage(ctx, wallet, offset, limit)
	}
	return paginator.FetchAll(ctx, fetch, c.paginatorOptions(KindTrades, c.tradePageSize, 0))
}

// RecentTrades fetches up to max trades from the global trade tape.
func (c *Client) RecentTrades(ctx context.Context, max int) ([]domain.Trade, error) {
	fetch := func(ctx context.Context, offset, limit int) ([]domain.Trade, error) {
		return c.fetchTradePage(ctx, "", offset, limit)
	}
	return paginator.FetchAll(ctx, fetch, c.paginatorOptions(KindTrades, c.tradePageSize, max))
}
