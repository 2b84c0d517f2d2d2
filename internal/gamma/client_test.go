package gamma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polymarket-wallet-lab/internal/domain"
)

// pagedMarkets serves total synthetic markets through the Gamma paging
// protocol, echoing whatever filter params the client sent.
func pagedMarkets(t *testing.T, total int, wantParams map[string]string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		for k, v := range wantParams {
			assert.Equal(t, v, r.URL.Query().Get(k), "query param %s", k)
		}

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		require.Greater(t, limit, 0)

		markets := make([]domain.Market, 0, limit)
		for i := offset; i < offset+limit && i < total; i++ {
			markets = append(markets, domain.Market{
				ID:          strconv.Itoa(i),
				ConditionID: fmt.Sprintf("0xcond%d", i),
				Question:    fmt.Sprintf("Market %d?", i),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(markets)
	}
}

func TestClient_ResolvedMarkets_Completeness(t *testing.T) {
	const total = 437

	srv := httptest.NewServer(pagedMarkets(t, total, map[string]string{"closed": "true"}))
	defer srv.Close()

	client := NewClient(
		WithGammaURL(srv.URL),
		WithPageSizes(100, 100),
		WithConcurrency(5),
	)

	markets, err := client.ResolvedMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, total)

	seen := make(map[string]bool, total)
	for _, m := range markets {
		assert.False(t, seen[m.ID], "duplicate market %s", m.ID)
		seen[m.ID] = true
	}
}

func TestClient_ActiveMarkets_Filter(t *testing.T) {
	srv := httptest.NewServer(pagedMarkets(t, 3, map[string]string{
		"active": "true",
		"closed": "false",
	}))
	defer srv.Close()

	client := NewClient(WithGammaURL(srv.URL))

	markets, err := client.ActiveMarkets(context.Background())
	require.NoError(t, err)
	assert.Len(t, markets, 3)
}

func TestClient_WalletTrades_UserFilter(t *testing.T) {
	const wallet = "0xabc123"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trades", r.URL.Path)
		assert.Equal(t, wallet, r.URL.Query().Get("user"))

		var trades []domain.Trade
		if r.URL.Query().Get("offset") == "0" {
			trades = []domain.Trade{
				{ProxyWallet: wallet, Side: domain.SideBuy, ConditionID: "0xc1", Size: 10, Price: 0.4},
			}
		}
		json.NewEncoder(w).Encode(trades)
	}))
	defer srv.Close()

	client := NewClient(WithDataURL(srv.URL))

	trades, err := client.WalletTrades(context.Background(), wallet)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, domain.SideBuy, trades[0].Side)
	assert.Equal(t, 0.4, trades[0].Price)
}

func TestClient_RecentTrades_Cap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("user"))

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		trades := make([]domain.Trade, limit)
		for i := range trades {
			trades[i] = domain.Trade{ProxyWallet: fmt.Sprintf("0xw%d", offset+i)}
		}
		json.NewEncoder(w).Encode(trades)
	}))
	defer srv.Close()

	client := NewClient(
		WithDataURL(srv.URL),
		WithPageSizes(100, 100),
		WithConcurrency(3),
	)

	trades, err := client.RecentTrades(context.Background(), 250)
	require.NoError(t, err)
	assert.Len(t, trades, 250)
}

func TestClient_RetriesOnServerError(t *testing.T) {
	var attempts atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]domain.Market{})
	}))
	defer srv.Close()

	client := NewClient(
		WithGammaURL(srv.URL),
		WithRetries(3, time.Millisecond),
	)

	_, err := client.ResolvedMarkets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), attempts.Load())
}

func TestClient_DoesNotRetryClientError(t *testing.T) {
	var attempts atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(
		WithGammaURL(srv.URL),
		WithRetries(3, time.Millisecond),
	)

	_, err := client.ResolvedMarkets(context.Background())
	require.Error(t, err)
	assert.Equal(t, int64(1), attempts.Load())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.False(t, apiErr.IsRetryable())
}

func TestAPIError_IsRetryable(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 500}).IsRetryable())
	assert.True(t, (&APIError{StatusCode: 503}).IsRetryable())
	assert.True(t, (&APIError{StatusCode: 429}).IsRetryable())
	assert.False(t, (&APIError{StatusCode: 400}).IsRetryable())
	assert.False(t, (&APIError{StatusCode: 404}).IsRetryable())
}
