package domain

// Trade sides as reported by the Data API. Unknown sides are carried through
// unchanged and ignored by the position builder.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Trade represents a single fill from the Data API trade feed.
// No ordering is guaranteed across a fetched batch; consumers needing
// timestamp order must sort explicitly.
type Trade struct {
	ProxyWallet  string  `json:"proxyWallet"`  // owning wallet address
	Side         string  `json:"side"`         // BUY | SELL
	ConditionID  string  `json:"conditionId"`  // market the fill belongs to
	Size         float64 `json:"size"`         // share count
	Price        float64 `json:"price"`        // unit price in USD
	Timestamp    int64   `json:"timestamp"`    // Unix seconds
	OutcomeIndex int     `json:"outcomeIndex"` // 0 or 1 for binary markets
	Title        string  `json:"title"`        // market title, may be empty
	Name         string  `json:"name"`         // display name, may be empty
}
