// Package scanner orchestrates insider scans: discover active wallets from
// the trade tape, reconstruct and settle each wallet's positions, and flag
// statistically anomalous performers.
package scanner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"polymarket-wallet-lab/internal/domain"
	"polymarket-wallet-lab/internal/observability"
	"polymarket-wallet-lab/internal/wallet"
)

// Default scan parameters.
const (
	DefaultSampleSize  = 10000 // global tape trades sampled for wallet discovery
	DefaultTopWallets  = 50
	DefaultMinResolved = 5 // wallets with fewer resolved positions are skipped
)

// TradeSource supplies the record sets a scan needs. *gamma.Client satisfies
// it; tests substitute fakes.
type TradeSource interface {
	ResolvedMarkets(ctx context.Context) ([]domain.Market, error)
	WalletTrades(ctx context.Context, walletAddr string) ([]domain.Trade, error)
	RecentTrades(ctx context.Context, max int) ([]domain.Trade, error)
}

// Scanner runs wallet discovery and insider scans.
type Scanner struct {
	source      TradeSource
	logger      *zap.Logger
	metrics     *observability.Metrics
	sampleSize  int
	topWallets  int
	minResolved int
}

// Options for creating a Scanner.
type Options struct {
	Source      TradeSource // required
	Logger      *zap.Logger
	Metrics     *observability.Metrics // optional
	SampleSize  int
	TopWallets  int
	MinResolved int
}

// New creates a Scanner.
func New(opts Options) *Scanner {
	s := &Scanner{
		source:      opts.Source,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		sampleSize:  opts.SampleSize,
		topWallets:  opts.TopWallets,
		minResolved: opts.MinResolved,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.sampleSize <= 0 {
		s.sampleSize = DefaultSampleSize
	}
	if s.topWallets <= 0 {
		s.topWallets = DefaultTopWallets
	}
	if s.minResolved <= 0 {
		s.minResolved = DefaultMinResolved
	}
	return s
}

// WalletReport is one wallet's scan outcome.
type WalletReport struct {
	Wallet      string
	Performance domain.Performance
	Flagged     bool
	Reasons     []string
}

// Result summarizes a full insider scan.
type Result struct {
	RunID           string
	StartedAt       time.Time
	FinishedAt      time.Time
	ResolvedMarkets int
	WalletsScanned  int
	WalletsSkipped  int
	Flagged         []WalletReport
	Errors          []string
}

// FindActiveWallets samples the global trade tape and returns the wallets
// with the most fills, busiest first.
func (s *Scanner) FindActiveWallets(ctx context.Context) ([]string, error) {
	s.logger.Info("sampling trade tape for active wallets",
		zap.Int("sample_size", s.sampleSize))

	trades, err := s.source.RecentTrades(ctx, s.sampleSize)
	if err != nil {
		return nil, fmt.Errorf("sample trade tape: %w", err)
	}

	counts := make(map[string]int)
	for _, t := range trades {
		if t.ProxyWallet == "" {
			continue
		}
		counts[t.ProxyWallet]++
	}

	wallets := make([]string, 0, len(counts))
	for w := range counts {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool {
		if counts[wallets[i]] != counts[wallets[j]] {
			return counts[wallets[i]] > counts[wallets[j]]
		}
		return wallets[i] < wallets[j]
	})

	if len(wallets) > s.topWallets {
		wallets = wallets[:s.topWallets]
	}

	s.logger.Info("active wallets found",
		zap.Int("trades_sampled", len(trades)),
		zap.Int("wallets", len(wallets)))

	return wallets, nil
}

// ScanForInsiders analyzes each wallet against the resolved market set and
// collects the flagged ones. Per-wallet fetch errors are recorded and the
// scan continues; only the resolved-market load can fail the whole scan.
func (s *Scanner) ScanForInsiders(ctx context.Context, walletAddrs []string) (*Result, error) {
	result := &Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	s.logger.Info("loading resolved markets", zap.String("run_id", result.RunID))
	resolvedMarkets, err := s.source.ResolvedMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load resolved markets: %w", err)
	}
	result.ResolvedMarkets = len(resolvedMarkets)
	if s.metrics != nil {
		s.metrics.MarketsResolved.Set(float64(len(resolvedMarkets)))
	}
	s.logger.Info("resolved markets loaded", zap.Int("markets", len(resolvedMarkets)))

	for i, addr := range walletAddrs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.logger.Info("analyzing wallet",
			zap.String("wallet", addr),
			zap.Int("index", i+1),
			zap.Int("total", len(walletAddrs)))

		report, skipped, err := s.scanWallet(ctx, addr, resolvedMarkets)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", addr, err))
			result.WalletsSkipped++
			if s.metrics != nil {
				s.metrics.WalletsSkipped.Inc()
			}
			s.logger.Warn("wallet fetch failed", zap.String("wallet", addr), zap.Error(err))
			continue
		}
		if skipped {
			result.WalletsSkipped++
			if s.metrics != nil {
				s.metrics.WalletsSkipped.Inc()
			}
			continue
		}

		result.WalletsScanned++
		if s.metrics != nil {
			s.metrics.WalletsScanned.Inc()
		}

		if report.Flagged {
			result.Flagged = append(result.Flagged, report)
			if s.metrics != nil {
				s.metrics.WalletsFlagged.Inc()
			}
			s.logger.Warn("suspicious wallet",
				zap.String("wallet", addr),
				zap.Float64("win_rate", report.Performance.WinRate),
				zap.Float64("roi", report.Performance.ROI),
				zap.Strings("reasons", report.Reasons))
		} else {
			s.logger.Info("normal activity",
				zap.String("wallet", addr),
				zap.Float64("win_rate", report.Performance.WinRate),
				zap.Float64("roi", report.Performance.ROI))
		}
	}

	result.FinishedAt = time.Now()
	if s.metrics != nil {
		s.metrics.ScanDuration.Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())
	}

	s.logger.Info("scan complete",
		zap.String("run_id", result.RunID),
		zap.Int("scanned", result.WalletsScanned),
		zap.Int("skipped", result.WalletsSkipped),
		zap.Int("flagged", len(result.Flagged)))

	return result, nil
}

// scanWallet analyzes a single wallet. skipped is true when the wallet has
// no trades or too few resolved positions for a meaningful classification.
func (s *Scanner) scanWallet(ctx context.Context, addr string, resolvedMarkets []domain.Market) (WalletReport, bool, error) {
	trades, err := s.source.WalletTrades(ctx, addr)
	if err != nil {
		return WalletReport{}, false, err
	}
	if len(trades) == 0 {
		s.logger.Info("no trades found", zap.String("wallet", addr))
		return WalletReport{}, true, nil
	}

	perf := wallet.Analyze(trades, resolvedMarkets)
	if perf.ResolvedPositions < s.minResolved {
		s.logger.Info("insufficient data",
			zap.String("wallet", addr),
			zap.Int("resolved_positions", perf.ResolvedPositions))
		return WalletReport{}, true, nil
	}

	flagged, reasons := wallet.Classify(perf)

	return WalletReport{
		Wallet:      addr,
		Performance: perf,
		Flagged:     flagged,
		Reasons:     reasons,
	}, false, nil
}
