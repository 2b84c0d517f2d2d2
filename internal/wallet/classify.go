package wallet

import (
	"fmt"
	"math"

	"polymarket-wallet-lab/internal/domain"
)

// MinResolvedSample is the minimum number of resolved positions needed
// before classification is attempted; smaller samples produce too many
// false positives.
const MinResolvedSample = 10

// Anomaly rule thresholds.
const (
	extremeWinRatePct  = 75.0
	elevatedWinRatePct = 65.0

	highROIPct      = 50.0
	highROIMinStake = 1000.0

	sustainedMinWins    = 15
	sustainedWinRatePct = 70.0

	asymmetricWinFactor = 2.0
	asymmetricMinWins   = 10
)

// Classify evaluates a performance summary against the anomaly rule set and
// returns whether the wallet is flagged along with every matching reason.
// A sample below MinResolvedSample short-circuits to not-flagged with an
// explanatory note.
func Classify(perf domain.Performance) (bool, []string) {
	if perf.ResolvedPositions < MinResolvedSample {
		return false, []string{
			fmt.Sprintf("Insufficient data (less than %d resolved positions)", MinResolvedSample),
		}
	}

	var reasons []string

	if perf.WinRate > extremeWinRatePct {
		reasons = append(reasons, fmt.Sprintf(
			"Extremely high win rate: %.1f%% (normal is ~50-60%%)", perf.WinRate))
	} else if perf.WinRate > elevatedWinRatePct {
		reasons = append(reasons, fmt.Sprintf(
			"Suspicious win rate: %.1f%% (normal is ~50-60%%)", perf.WinRate))
	}

	if perf.ROI > highROIPct && perf.TotalInvested > highROIMinStake {
		reasons = append(reasons, fmt.Sprintf(
			"Very high ROI: %.1f%% with $%.2f invested", perf.ROI, perf.TotalInvested))
	}

	if perf.Wins > sustainedMinWins && perf.WinRate > sustainedWinRatePct {
		reasons = append(reasons, fmt.Sprintf(
			"Consistent high performance: %d wins out of %d resolved positions",
			perf.Wins, perf.ResolvedPositions))
	}

	if perf.AvgProfitPerWin > math.Abs(perf.AvgLossPerLoss)*asymmetricWinFactor && perf.Wins > asymmetricMinWins {
		reasons = append(reasons, fmt.Sprintf(
			"Asymmetric profit pattern: avg win $%.2f vs avg loss $%.2f",
			perf.AvgProfitPerWin, perf.AvgLossPerLoss))
	}

	return len(reasons) > 0, reasons
}
