// Package wallet reconstructs net positions from trade streams, settles them
// against resolved markets, and computes per-wallet performance statistics.
// Everything in this package is a pure, deterministic fold with no
// concurrency concerns.
package wallet

import (
	"math"
	"sort"

	"polymarket-wallet-lab/internal/domain"
)

// closedEpsilon is the net share magnitude below which a position is treated
// as fully closed and dropped from the output.
const closedEpsilon = 0.001

type positionKey struct {
	conditionID  string
	outcomeIndex int
}

// BuildPositions folds an unordered trade stream into the set of open
// positions, one per (conditionId, outcomeIndex) key.
//
// BUY adds shares and capital and recomputes the weighted-average entry
// price. SELL removes shares and releases capital at the carried average
// price; the average is not recomputed and no mark-to-market gain is
// realized on partial sells. Once net shares reach zero or below, capital
// and average price reset to exactly zero. Unknown sides are ignored.
//
// Selling more than held drives net shares negative; that is reported as-is
// from the upstream trade log, not a short-position model, and is treated
// like flat for capital-reset purposes.
func BuildPositions(trades []domain.Trade) []domain.Position {
	byKey := make(map[positionKey]*domain.Position)

	for _, t := range trades {
		key := positionKey{t.ConditionID, t.OutcomeIndex}

		pos, ok := byKey[key]
		if !ok {
			pos = &domain.Position{
				ConditionID:  t.ConditionID,
				OutcomeIndex: t.OutcomeIndex,
				Title:        t.Title,
			}
			byKey[key] = pos
		}

		switch t.Side {
		case domain.SideBuy:
			pos.NetShares += t.Size
			pos.TotalInvested += t.Size * t.Price
			if pos.NetShares > 0 {
				pos.AvgPrice = pos.TotalInvested / pos.NetShares
			}
		case domain.SideSell:
			pos.NetShares -= t.Size
			if pos.NetShares > 0 {
				pos.TotalInvested -= t.Size * pos.AvgPrice
			} else {
				pos.TotalInvested = 0
				pos.AvgPrice = 0
			}
		default:
			// Unknown event kind, skip for forward compatibility.
		}
	}

	positions := make([]domain.Position, 0, len(byKey))
	for _, pos := range byKey {
		if math.Abs(pos.NetShares) < closedEpsilon {
			continue
		}
		positions = append(positions, *pos)
	}

	// Map iteration order is random; sort for deterministic output.
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].ConditionID != positions[j].ConditionID {
			return positions[i].ConditionID < positions[j].ConditionID
		}
		return positions[i].OutcomeIndex < positions[j].OutcomeIndex
	})

	return positions
}
