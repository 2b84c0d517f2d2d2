package domain

// Performance aggregates one wallet's resolved positions into summary
// statistics. It is recomputed fresh per analysis, never mutated
// incrementally. WinRate and ROI are percentages and zero when their
// denominators are zero.
type Performance struct {
	Wallet            string
	TotalTrades       int
	TotalMarkets      int // distinct conditionIds across the raw trade list
	ResolvedPositions int
	Wins              int
	Losses            int
	WinRate           float64 // percent
	TotalInvested     float64
	TotalPayout       float64
	NetProfit         float64
	ROI               float64 // percent
	AvgProfitPerWin   float64
	AvgLossPerLoss    float64 // negative or zero
}
