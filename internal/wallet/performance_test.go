package wallet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"polymarket-wallet-lab/internal/domain"
)

// tradesForOutcomes builds a one-buy-per-market history plus the resolved
// markets settling each one: wins markets won, the rest lost. Every buy is
// 10 shares at $0.50.
func tradesForOutcomes(wallet string, wins, losses int) ([]domain.Trade, []domain.Market) {
	var trades []domain.Trade
	var markets []domain.Market

	for i := 0; i < wins+losses; i++ {
		cond := fmt.Sprintf("0xc%d", i)
		trades = append(trades, domain.Trade{
			ProxyWallet:  wallet,
			Side:         domain.SideBuy,
			ConditionID:  cond,
			OutcomeIndex: 0,
			Size:         10,
			Price:        0.5,
		})

		prices := `["0.99","0.01"]`
		if i >= wins {
			prices = `["0.01","0.99"]`
		}
		markets = append(markets, domain.Market{ConditionID: cond, OutcomePrices: prices})
	}

	return trades, markets
}

func TestAnalyze_EmptyTrades(t *testing.T) {
	perf := Analyze(nil, nil)
	assert.Equal(t, domain.Performance{}, perf)
}

func TestAnalyze_SummaryArithmetic(t *testing.T) {
	trades, markets := tradesForOutcomes("0xwallet", 3, 1)

	perf := Analyze(trades, markets)

	assert.Equal(t, "0xwallet", perf.Wallet)
	assert.Equal(t, 4, perf.TotalTrades)
	assert.Equal(t, 4, perf.TotalMarkets)
	assert.Equal(t, 4, perf.ResolvedPositions)
	assert.Equal(t, 3, perf.Wins)
	assert.Equal(t, 1, perf.Losses)
	assert.InDelta(t, 75.0, perf.WinRate, 1e-9)

	// Each position: $5 in, winners pay out $10.
	assert.InDelta(t, 20.0, perf.TotalInvested, 1e-9)
	assert.InDelta(t, 30.0, perf.TotalPayout, 1e-9)
	assert.InDelta(t, 10.0, perf.NetProfit, 1e-9)
	assert.InDelta(t, 50.0, perf.ROI, 1e-9)
	assert.InDelta(t, 5.0, perf.AvgProfitPerWin, 1e-9)
	assert.InDelta(t, -5.0, perf.AvgLossPerLoss, 1e-9)
}

func TestAnalyze_NoResolvedMarkets(t *testing.T) {
	trades, _ := tradesForOutcomes("0xwallet", 2, 2)

	perf := Analyze(trades, nil)

	assert.Equal(t, 4, perf.TotalTrades)
	assert.Zero(t, perf.ResolvedPositions)
	assert.Zero(t, perf.WinRate)
	assert.Zero(t, perf.ROI)
	assert.Zero(t, perf.AvgProfitPerWin)
	assert.Zero(t, perf.AvgLossPerLoss)
}
