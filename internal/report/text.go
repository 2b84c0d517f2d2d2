// Package report renders scan results as text, Markdown, and CSV. All
// renderers are pure string builders; callers own the I/O.
package report

import (
	"fmt"
	"strings"

	"polymarket-wallet-lab/internal/scanner"
)

const rule = "================================================================================"

// RenderText renders a scan result as a console report.
func RenderText(r *scanner.Result) string {
	var sb strings.Builder

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("SCAN SUMMARY\n")
	sb.WriteString(rule + "\n\n")
	sb.WriteString(fmt.Sprintf("Run ID:                    %s\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Resolved markets loaded:   %d\n", r.ResolvedMarkets))
	sb.WriteString(fmt.Sprintf("Wallets scanned:           %d\n", r.WalletsScanned))
	sb.WriteString(fmt.Sprintf("Wallets skipped:           %d\n", r.WalletsSkipped))
	sb.WriteString(fmt.Sprintf("Suspicious wallets found:  %d\n", len(r.Flagged)))

	if len(r.Flagged) > 0 {
		sb.WriteString("\n" + rule + "\n")
		sb.WriteString("SUSPICIOUS WALLETS (POTENTIAL INSIDERS)\n")
		sb.WriteString(rule + "\n")

		for i, w := range r.Flagged {
			p := w.Performance
			sb.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, w.Wallet))
			sb.WriteString(fmt.Sprintf("   Win Rate: %.1f%% | ROI: %.1f%% | Resolved Positions: %d\n",
				p.WinRate, p.ROI, p.ResolvedPositions))
			sb.WriteString(fmt.Sprintf("   Total Invested: $%.2f | Net Profit: $%.2f\n",
				p.TotalInvested, p.NetProfit))
			sb.WriteString("   Red Flags:\n")
			for _, reason := range w.Reasons {
				sb.WriteString(fmt.Sprintf("     - %s\n", reason))
			}
		}
		sb.WriteString("\n" + rule + "\n")
	}

	if len(r.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, e := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", e))
		}
	}

	return sb.String()
}

// RenderPerformance renders one wallet's full performance report.
func RenderPerformance(w scanner.WalletReport) string {
	var sb strings.Builder
	p := w.Performance

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("WALLET PERFORMANCE REPORT\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("\nWallet: %s\n", w.Wallet))

	sb.WriteString("\n--- Trading Activity ---\n")
	sb.WriteString(fmt.Sprintf("Total Trades:         %d\n", p.TotalTrades))
	sb.WriteString(fmt.Sprintf("Unique Markets:       %d\n", p.TotalMarkets))
	sb.WriteString(fmt.Sprintf("Resolved Positions:   %d\n", p.ResolvedPositions))

	sb.WriteString("\n--- Win/Loss Record ---\n")
	sb.WriteString(fmt.Sprintf("Wins:                 %d\n", p.Wins))
	sb.WriteString(fmt.Sprintf("Losses:               %d\n", p.Losses))
	sb.WriteString(fmt.Sprintf("Win Rate:             %.1f%%\n", p.WinRate))

	sb.WriteString("\n--- Financial Performance ---\n")
	sb.WriteString(fmt.Sprintf("Total Invested:       $%.2f\n", p.TotalInvested))
	sb.WriteString(fmt.Sprintf("Total Payout:         $%.2f\n", p.TotalPayout))
	sb.WriteString(fmt.Sprintf("Net Profit:           $%.2f\n", p.NetProfit))
	sb.WriteString(fmt.Sprintf("ROI:                  %.1f%%\n", p.ROI))
	sb.WriteString(fmt.Sprintf("Avg Profit per Win:   $%.2f\n", p.AvgProfitPerWin))
	sb.WriteString(fmt.Sprintf("Avg Loss per Loss:    $%.2f\n", p.AvgLossPerLoss))

	if w.Flagged {
		sb.WriteString("\nSUSPICIOUS ACTIVITY DETECTED\n")
		for _, reason := range w.Reasons {
			sb.WriteString(fmt.Sprintf("- %s\n", reason))
		}
	} else {
		sb.WriteString("\nNo suspicious patterns detected.\n")
	}

	return sb.String()
}
