package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polymarket-wallet-lab/internal/domain"
)

// basePerf is a large, unremarkable sample that trips no rule.
func basePerf() domain.Performance {
	return domain.Performance{
		ResolvedPositions: 40,
		Wins:              22,
		Losses:            18,
		WinRate:           55,
		TotalInvested:     5000,
		ROI:               8,
		AvgProfitPerWin:   50,
		AvgLossPerLoss:    -45,
	}
}

func TestClassify_InsufficientSample(t *testing.T) {
	perf := basePerf()
	perf.ResolvedPositions = MinResolvedSample - 1
	perf.WinRate = 100

	flagged, reasons := Classify(perf)
	assert.False(t, flagged)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "Insufficient data")
}

func TestClassify_CleanWallet(t *testing.T) {
	flagged, reasons := Classify(basePerf())
	assert.False(t, flagged)
	assert.Empty(t, reasons)
}

func TestClassify_WinRateTiers(t *testing.T) {
	perf := basePerf()
	perf.Wins = 10
	perf.AvgProfitPerWin = 0

	perf.WinRate = 65
	flagged, reasons := Classify(perf)
	assert.False(t, flagged, "65%% is the boundary, not above it")
	assert.Empty(t, reasons)

	perf.WinRate = 68
	flagged, reasons = Classify(perf)
	assert.True(t, flagged)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "Suspicious win rate: 68.0%")

	perf.WinRate = 80
	flagged, reasons = Classify(perf)
	assert.True(t, flagged)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "Extremely high win rate: 80.0%")
}

func TestClassify_HighROIRequiresStake(t *testing.T) {
	perf := basePerf()
	perf.ROI = 120

	perf.TotalInvested = 900
	flagged, _ := Classify(perf)
	assert.False(t, flagged)

	perf.TotalInvested = 1500
	flagged, reasons := Classify(perf)
	assert.True(t, flagged)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "Very high ROI: 120.0% with $1500.00 invested")
}

func TestClassify_SustainedWins(t *testing.T) {
	perf := basePerf()
	perf.Wins = 18
	perf.ResolvedPositions = 25
	perf.WinRate = 72
	perf.AvgProfitPerWin = 0

	flagged, reasons := Classify(perf)
	assert.True(t, flagged)
	require.Len(t, reasons, 2)
	assert.Contains(t, reasons[0], "Suspicious win rate")
	assert.Contains(t, reasons[1], "Consistent high performance: 18 wins out of 25 resolved positions")
}

func TestClassify_AsymmetricProfits(t *testing.T) {
	perf := basePerf()
	perf.Wins = 11
	perf.AvgProfitPerWin = 100
	perf.AvgLossPerLoss = -40

	flagged, reasons := Classify(perf)
	assert.True(t, flagged)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "Asymmetric profit pattern: avg win $100.00 vs avg loss $-40.00")

	// Same asymmetry with too few wins does not trip the rule.
	perf.Wins = 10
	flagged, _ = Classify(perf)
	assert.False(t, flagged)
}
