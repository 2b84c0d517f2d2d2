// Package arb detects intra-market arbitrage: binary markets whose YES and
// NO prices sum to less than a dollar by more than the fee margin.
package arb

import (
	"sort"

	"polymarket-wallet-lab/internal/domain"
)

// DefaultThreshold leaves roughly 1% headroom for trading fees.
const DefaultThreshold = 0.99

// Opportunity is a market where buying both outcomes costs less than the
// guaranteed $1 payout.
type Opportunity struct {
	Question        string
	YesPrice        float64
	NoPrice         float64
	TotalCost       float64
	ProfitPerDollar float64
	ProfitPercent   float64
	Volume          float64
	Liquidity       float64
}

// Scanner scans markets for arbitrage opportunities.
type Scanner struct {
	threshold float64
}

// NewScanner creates a scanner flagging markets where YES+NO < threshold.
func NewScanner(threshold float64) *Scanner {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Scanner{threshold: threshold}
}

// Scan checks every market and returns the opportunities found, sorted by
// profit percentage descending.
func (s *Scanner) Scan(markets []domain.Market) []Opportunity {
	var opportunities []Opportunity

	for _, m := range markets {
		if opp, ok := s.checkMarket(m); ok {
			opportunities = append(opportunities, opp)
		}
	}

	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].ProfitPercent > opportunities[j].ProfitPercent
	})

	return opportunities
}

// checkMarket evaluates a single market. Non-binary or unpriced markets
// never qualify.
func (s *Scanner) checkMarket(m domain.Market) (Opportunity, bool) {
	yes, no, ok := m.OutcomePricePair()
	if !ok {
		return Opportunity{}, false
	}

	totalCost := yes + no
	if totalCost >= s.threshold {
		return Opportunity{}, false
	}

	profitPerDollar := 1.0 - totalCost

	return Opportunity{
		Question:        m.Question,
		YesPrice:        yes,
		NoPrice:         no,
		TotalCost:       totalCost,
		ProfitPerDollar: profitPerDollar,
		ProfitPercent:   profitPerDollar / totalCost * 100,
		Volume:          m.VolumeUSD(),
		Liquidity:       m.LiquidityUSD(),
	}, true
}
