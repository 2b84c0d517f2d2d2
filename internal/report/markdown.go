package report

import (
	"fmt"
	"strings"
	"time"

	"polymarket-wallet-lab/internal/scanner"
)

// RenderMarkdown renders a scan result as a Markdown document.
func RenderMarkdown(r *scanner.Result) string {
	var sb strings.Builder

	sb.WriteString("# Insider Scan Report\n\n")
	sb.WriteString(fmt.Sprintf("Run: `%s`\n\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.FinishedAt.Format(time.RFC3339)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Resolved Markets | %d |\n", r.ResolvedMarkets))
	sb.WriteString(fmt.Sprintf("| Wallets Scanned | %d |\n", r.WalletsScanned))
	sb.WriteString(fmt.Sprintf("| Wallets Skipped | %d |\n", r.WalletsSkipped))
	sb.WriteString(fmt.Sprintf("| Wallets Flagged | %d |\n", len(r.Flagged)))
	sb.WriteString("\n")

	if len(r.Flagged) == 0 {
		sb.WriteString("No suspicious wallets found.\n")
		return sb.String()
	}

	sb.WriteString("## Flagged Wallets\n\n")
	sb.WriteString("| Wallet | Win Rate | ROI | Resolved | Invested | Net Profit |\n")
	sb.WriteString("|--------|----------|-----|----------|----------|------------|\n")
	for _, w := range r.Flagged {
		p := w.Performance
		sb.WriteString(fmt.Sprintf("| `%s` | %.1f%% | %.1f%% | %d | $%.2f | $%.2f |\n",
			w.Wallet, p.WinRate, p.ROI, p.ResolvedPositions, p.TotalInvested, p.NetProfit))
	}
	sb.WriteString("\n")

	for _, w := range r.Flagged {
		sb.WriteString(fmt.Sprintf("### `%s`\n\n", w.Wallet))
		for _, reason := range w.Reasons {
			sb.WriteString(fmt.Sprintf("- %s\n", reason))
		}
		sb.WriteString("\n")
	}

	if len(r.Errors) > 0 {
		sb.WriteString("## Errors\n\n")
		for _, e := range r.Errors {
			sb.WriteString(fmt.Sprintf("- %s\n", e))
		}
	}

	return sb.String()
}
