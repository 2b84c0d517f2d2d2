package domain

// Position is a wallet's net holding in one (conditionId, outcomeIndex) key,
// reconstructed by folding the trade stream.
// Invariant: TotalInvested == NetShares*AvgPrice while NetShares > 0; both
// are exactly zero once NetShares crosses to zero or below.
type Position struct {
	ConditionID   string
	OutcomeIndex  int
	NetShares     float64
	AvgPrice      float64 // weighted-average entry price, carried forward on sells
	TotalInvested float64
	Title         string
}

// ResolvedPosition is a Position matched against a market whose winner is
// known. Payout is NetShares when the bet outcome won, zero otherwise.
type ResolvedPosition struct {
	Position

	WinningOutcomeIndex int
	Won                 bool
	Payout              float64
	Profit              float64 // Payout - TotalInvested
}
