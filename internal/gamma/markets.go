package gamma

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"polymarket-wallet-lab/internal/domain"
	"polymarket-wallet-lab/internal/paginator"
)

// fetchMarketPage retrieves one page of markets matching filter.
func (c *Client) fetchMarketPage(ctx context.Context, filter url.Values, offset, limit int) ([]domain.Market, error) {
	query := url.Values{}
	for k, vs := range filter {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var markets []domain.Market
	if err := c.get(ctx, c.gammaURL, "/markets", query, &markets); err != nil {
		return nil, fmt.Errorf("get markets page at offset %d: %w", offset, err)
	}

	return markets, nil
}

// fetchAllMarkets materializes every market matching filter.
func (c *Client) fetchAllMarkets(ctx context.Context, filter url.Values) ([]domain.Market, error) {
	fetch := func(ctx context.Context, offset, limit int) ([]domain.Market, error) {
		return c.fetchMarketPage(ctx, filter, offset, limit)
	}
	return paginator.FetchAll(ctx, fetch, c.paginatorOptions(KindMarkets, c.marketPageSize, 0))
}

// ActiveMarkets fetches all currently open markets.
func (c *Client) ActiveMarkets(ctx context.Context) ([]domain.Market, error) {
	filter := url.Values{}
	filter.Set("active", "true")
	filter.Set("closed", "false")
	return c.fetchAllMarkets(ctx, filter)
}

// ResolvedMarkets fetches all closed markets, used to settle reconstructed
// positions against outcome prices.
func (c *Client) ResolvedMarkets(ctx context.Context) ([]domain.Market, error) {
	filter := url.Values{}
	filter.Set("closed", "true")
	return c.fetchAllMarkets(ctx, filter)
}
