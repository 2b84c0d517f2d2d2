package wallet

import "polymarket-wallet-lab/internal/domain"

// Analyze reconstructs positions from trades, settles them against the
// resolved market set, and reduces the result to a performance summary.
// An empty trade list yields the zero summary.
func Analyze(trades []domain.Trade, resolvedMarkets []domain.Market) domain.Performance {
	if len(trades) == 0 {
		return domain.Performance{}
	}

	positions := BuildPositions(trades)
	resolved := MatchResolved(positions, resolvedMarkets)

	return summarize(trades[0].ProxyWallet, trades, resolved)
}

// summarize computes the statistical reduction over resolved positions.
// All ratios guard the zero-denominator case.
func summarize(walletAddr string, trades []domain.Trade, resolved []domain.ResolvedPosition) domain.Performance {
	markets := make(map[string]struct{})
	for _, t := range trades {
		markets[t.ConditionID] = struct{}{}
	}

	wins := 0
	totalInvested := 0.0
	totalPayout := 0.0
	winProfit := 0.0
	lossProfit := 0.0
	for _, rp := range resolved {
		if rp.Won {
			wins++
			winProfit += rp.Profit
		} else {
			lossProfit += rp.Profit
		}
		totalInvested += rp.TotalInvested
		totalPayout += rp.Payout
	}
	losses := len(resolved) - wins

	perf := domain.Performance{
		Wallet:            walletAddr,
		TotalTrades:       len(trades),
		TotalMarkets:      len(markets),
		ResolvedPositions: len(resolved),
		Wins:              wins,
		Losses:            losses,
		TotalInvested:     totalInvested,
		TotalPayout:       totalPayout,
		NetProfit:         totalPayout - totalInvested,
	}

	if len(resolved) > 0 {
		perf.WinRate = float64(wins) / float64(len(resolved)) * 100
	}
	if totalInvested > 0 {
		perf.ROI = perf.NetProfit / totalInvested * 100
	}
	if wins > 0 {
		perf.AvgProfitPerWin = winProfit / float64(wins)
	}
	if losses > 0 {
		perf.AvgLossPerLoss = lossProfit / float64(losses)
	}

	return perf
}
