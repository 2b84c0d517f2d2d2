// Package main provides the insider scan entry point: discover active
// wallets (or take an explicit list), reconstruct and settle their
// positions, classify the performance, and render the report.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"polymarket-wallet-lab/internal/config"
	"polymarket-wallet-lab/internal/gamma"
	"polymarket-wallet-lab/internal/observability"
	"polymarket-wallet-lab/internal/paginator"
	"polymarket-wallet-lab/internal/report"
	"polymarket-wallet-lab/internal/scanner"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: ./polylab.yaml if present)")
	walletList := flag.String("wallets", "", "Comma-separated wallet addresses to scan (default: auto-discover)")
	markdownOut := flag.String("markdown", "", "Write a Markdown report to this file")
	csvOut := flag.String("csv", "", "Write flagged wallets as CSV to this file")
	metricsAddr := flag.String("metrics-addr", "", "Expose Prometheus metrics on this address (overrides config)")
	verbose := flag.Bool("verbose", false, "Debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, cancelling scan", zap.Stringer("signal", sig))
		cancel()
	}()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics("", registry)
	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg, registry, logger)
	}

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
			return paginator.MultiObserver{
				paginator.LogObserver{Logger: logger, Kind: kind},
				metrics.PageObserver(kind),
			}
		}),
	)

	scan := scanner.New(scanner.Options{
		Source:      client,
		Logger:      logger,
		Metrics:     metrics,
		SampleSize:  cfg.Scan.SampleSize,
		TopWallets:  cfg.Scan.TopWallets,
		MinResolved: cfg.Scan.MinResolved,
	})

	wallets := splitWallets(*walletList)
	if len(wallets) == 0 {
		wallets, err = scan.FindActiveWallets(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error discovering wallets: %v\n", err)
			os.Exit(1)
		}
	}
	if len(wallets) == 0 {
		fmt.Println("No wallets to scan.")
		return
	}

	result, err := scan.ScanForInsiders(ctx, wallets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(report.RenderText(result))

	if *markdownOut != "" {
		if err := os.WriteFile(*markdownOut, []byte(report.RenderMarkdown(result)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing markdown report: %v\n", err)
			os.Exit(1)
		}
		logger.Info("markdown report written", zap.String("path", *markdownOut))
	}
	if *csvOut != "" {
		if err := os.WriteFile(*csvOut, []byte(report.RenderCSV(result)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing csv report: %v\n", err)
			os.Exit(1)
		}
		logger.Info("csv report written", zap.String("path", *csvOut))
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

func serveMetrics(cfg *config.Config, registry *prometheus.Registry, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, observability.Handler(registry))
	logger.Info("serving metrics",
		zap.String("addr", cfg.Metrics.Addr),
		zap.String("path", cfg.Metrics.Path))
	if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
		logger.Warn("metrics server stopped", zap.Error(err))
	}
}

func splitWallets(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	wallets := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := strings.TrimSpace(p); w != "" {
			wallets = append(wallets, w)
		}
	}
	return wallets
}
