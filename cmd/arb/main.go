// Package main provides the arbitrage scan entry point: fetch all active
// markets and report those whose YES+NO prices sum below the threshold.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"polymarket-wallet-lab/internal/arb"
	"polymarket-wallet-lab/internal/config"
	"polymarket-wallet-lab/internal/gamma"
	"polymarket-wallet-lab/internal/paginator"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: ./polylab.yaml if present)")
	threshold := flag.Float64("threshold", 0, "Arbitrage threshold (overrides config)")
	verbose := flag.Bool("verbose", false, "Debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *threshold > 0 {
		cfg.Arb.Threshold = *threshold
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	client := gamma.NewClient(
		gamma.WithGammaURL(cfg.API.GammaURL),
		gamma.WithDataURL(cfg.API.DataURL),
		gamma.WithTimeout(cfg.API.Timeout),
		gamma.WithRetries(cfg.API.MaxRetries, gamma.DefaultRetryBackoff),
		gamma.WithPageSizes(cfg.Paginator.MarketPageSize, cfg.Paginator.TradePageSize),
		gamma.WithConcurrency(cfg.Paginator.Concurrency),
		gamma.WithMaxConsecutiveEmpty(cfg.Paginator.MaxConsecutiveEmpty),
		gamma.WithLogger(logger),
		gamma.WithObserverFactory(func(kind string) paginator.Observer {
			return paginator.LogObserver{Logger: logger, Kind: kind}
		}),
	)

	fmt.Println("Polymarket Arbitrage Scanner")
	fmt.Println("============================")
	fmt.Println()
	fmt.Println("Fetching all active markets...")

	markets, err := client.ActiveMarkets(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching markets: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d active markets\n\n", len(markets))

	opportunities := arb.NewScanner(cfg.Arb.Threshold).Scan(markets)

	if len(opportunities) == 0 {
		fmt.Printf("No arbitrage opportunities found (threshold: total < $%.2f)\n", cfg.Arb.Threshold)
		fmt.Println()
		fmt.Println("This is normal - efficient markets eliminate arbitrage quickly.")
		fmt.Println("Run this periodically to catch fleeting opportunities.")
		return
	}

	fmt.Printf("Found %d arbitrage opportunities:\n\n", len(opportunities))
	for i, opp := range opportunities {
		fmt.Printf("\n%d. %s\n", i+1, opp.Question)
		fmt.Printf("   YES: $%.4f | NO: $%.4f | Total: $%.4f\n", opp.YesPrice, opp.NoPrice, opp.TotalCost)
		fmt.Printf("   Profit: $%.4f per $1 (%.2f%%)\n", opp.ProfitPerDollar, opp.ProfitPercent)
		fmt.Printf("   Volume: $%.2f | Liquidity: $%.2f\n", opp.Volume, opp.Liquidity)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
