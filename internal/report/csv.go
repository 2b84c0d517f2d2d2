package report

import (
	"fmt"
	"strings"

	"polymarket-wallet-lab/internal/scanner"
)

// RenderCSV renders the flagged wallets of a scan result as CSV.
func RenderCSV(r *scanner.Result) string {
	var sb strings.Builder

	sb.WriteString("wallet,win_rate,roi,resolved_positions,wins,losses,")
	sb.WriteString("total_invested,total_payout,net_profit,avg_win,avg_loss,reasons\n")

	for _, w := range r.Flagged {
		p := w.Performance
		sb.WriteString(fmt.Sprintf("%s,%.4f,%.4f,%d,%d,%d,%.2f,%.2f,%.2f,%.2f,%.2f,%q\n",
			w.Wallet,
			p.WinRate,
			p.ROI,
			p.ResolvedPositions,
			p.Wins,
			p.Losses,
			p.TotalInvested,
			p.TotalPayout,
			p.NetProfit,
			p.AvgProfitPerWin,
			p.AvgLossPerLoss,
			strings.Join(w.Reasons, "; "),
		))
	}

	return sb.String()
}
