package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polylab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// No config file anywhere near a temp working directory.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultGammaURL, cfg.API.GammaURL)
	assert.Equal(t, DefaultDataURL, cfg.API.DataURL)
	assert.Equal(t, DefaultWSURL, cfg.API.WSURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, DefaultMaxRetries, cfg.API.MaxRetries)
	assert.Equal(t, DefaultMarketPageSize, cfg.Paginator.MarketPageSize)
	assert.Equal(t, DefaultTradePageSize, cfg.Paginator.TradePageSize)
	assert.Equal(t, DefaultConcurrency, cfg.Paginator.Concurrency)
	assert.Equal(t, DefaultMaxConsecutiveEmpty, cfg.Paginator.MaxConsecutiveEmpty)
	assert.Equal(t, DefaultSampleSize, cfg.Scan.SampleSize)
	assert.Equal(t, DefaultTopWallets, cfg.Scan.TopWallets)
	assert.Equal(t, DefaultMinResolved, cfg.Scan.MinResolved)
	assert.Equal(t, DefaultArbThreshold, cfg.Arb.Threshold)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
api:
  gamma_url: http://localhost:8080
  timeout: 5s
paginator:
  concurrency: 3
scan:
  top_wallets: 7
metrics:
  addr: :9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.GammaURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.Paginator.Concurrency)
	assert.Equal(t, 7, cfg.Scan.TopWallets)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)

	// Unset fields still get defaults.
	assert.Equal(t, DefaultDataURL, cfg.API.DataURL)
	assert.Equal(t, DefaultSampleSize, cfg.Scan.SampleSize)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
scan:
  top_wallets: 7
`)
	t.Setenv("POLYLAB_SCAN_TOP_WALLETS", "25")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Scan.TopWallets)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
api:
  gamma_url: ftp://wrong
arb:
  threshold: 3.5
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.gamma_url")
	assert.Contains(t, err.Error(), "arb.threshold")
}
