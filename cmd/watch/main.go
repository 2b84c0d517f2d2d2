// Package main provides a live trade tape: subscribe to the CLOB market
// websocket channel for the given asset ids and print trade events as they
// arrive.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"polymarket-wallet-lab/internal/config"
	"polymarket-wallet-lab/internal/stream"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: ./polylab.yaml if present)")
	assets := flag.String("assets", "", "Comma-separated CLOB asset ids to watch (required)")
	verbose := flag.Bool("verbose", false, "Debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	assetIDs := splitAssets(*assets)
	if len(assetIDs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: watch -assets <id>[,<id>...]")
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	tape, err := stream.New(stream.Options{
		URL:      cfg.API.WSURL,
		AssetIDs: assetIDs,
		Logger:   logger,
		Handler: func(p stream.TradePrint) {
			ts := time.UnixMilli(p.Timestamp).Format("15:04:05")
			fmt.Printf("%s  %-4s %10.2f @ $%.4f  market=%s\n", ts, p.Side, p.Size, p.Price, p.Market)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating tape: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Watching %d assets (Ctrl-C to stop)...\n", len(assetIDs))
	if err := tape.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Tape stopped: %v\n", err)
		os.Exit(1)
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

func splitAssets(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
