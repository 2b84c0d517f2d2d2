package wallet

import "polymarket-wallet-lab/internal/domain"

// winnerThreshold is the settled price above which an outcome is declared
// the winner. Resolved markets often report settlement prices near but not
// exactly 1.0/0.0, so a threshold is used instead of a literal closed flag.
const winnerThreshold = 0.9

// winningOutcome determines the winning outcome index of a market from its
// outcome price pair. Markets that are unpriced, non-binary, or whose prices
// are still ambiguous are treated as unresolved.
func winningOutcome(m domain.Market) (int, bool) {
	yes, no, ok := m.OutcomePricePair()
	if !ok {
		return 0, false
	}

	switch {
	case yes > winnerThreshold:
		return 0, true
	case no > winnerThreshold:
		return 1, true
	default:
		return 0, false
	}
}

// MatchResolved settles open positions against resolved markets. Positions
// whose market is missing from the resolved set, or whose market has no
// unambiguous winner, are silently dropped.
func MatchResolved(positions []domain.Position, resolvedMarkets []domain.Market) []domain.ResolvedPosition {
	byCondition := make(map[string]domain.Market, len(resolvedMarkets))
	for _, m := range resolvedMarkets {
		if m.ConditionID == "" {
			continue
		}
		byCondition[m.ConditionID] = m
	}

	var resolved []domain.ResolvedPosition
	for _, pos := range positions {
		market, ok := byCondition[pos.ConditionID]
		if !ok {
			continue
		}

		winner, ok := winningOutcome(market)
		if !ok {
			continue
		}

		won := pos.OutcomeIndex == winner
		payout := 0.0
		if won {
			payout = pos.NetShares
		}

		rp := domain.ResolvedPosition{
			Position:            pos,
			WinningOutcomeIndex: winner,
			Won:                 won,
			Payout:              payout,
			Profit:              payout - pos.TotalInvested,
		}
		if market.Question != "" {
			rp.Title = market.Question
		}
		resolved = append(resolved, rp)
	}

	return resolved
}
