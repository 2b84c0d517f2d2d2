// Package observability provides Prometheus metrics for monitoring scans.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"polymarket-wallet-lab/internal/paginator"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Paginator metrics
	PagesFetched   *prometheus.CounterVec
	PagesFailed    *prometheus.CounterVec
	RecordsFetched *prometheus.CounterVec

	// Scan metrics
	WalletsScanned  prometheus.Counter
	WalletsFlagged  prometheus.Counter
	WalletsSkipped  prometheus.Counter
	ScanDuration    prometheus.Histogram
	MarketsResolved prometheus.Gauge
}

// NewMetrics creates a Metrics instance with all metrics registered on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "polymarket_wallet_lab"
	}
	factory := promauto.With(reg)

	return &Metrics{
		PagesFetched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "paginator",
			Name:      "pages_fetched_total",
			Help:      "Total number of pages fetched by record kind",
		}, []string{"kind"}),
		PagesFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "paginator",
			Name:      "pages_failed_total",
			Help:      "Total number of page fetches degraded to empty pages",
		}, []string{"kind"}),
		RecordsFetched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "paginator",
			Name:      "records_fetched_total",
			Help:      "Total number of records fetched by record kind",
		}, []string{"kind"}),

		WalletsScanned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "wallets_scanned_total",
			Help:      "Total number of wallets analyzed",
		}),
		WalletsFlagged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "wallets_flagged_total",
			Help:      "Total number of wallets flagged as anomalous",
		}),
		WalletsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "wallets_skipped_total",
			Help:      "Total number of wallets skipped for insufficient data or fetch errors",
		}),
		ScanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "duration_seconds",
			Help:      "Wall time of full insider scans",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		MarketsResolved: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "resolved_markets",
			Help:      "Number of resolved markets loaded for the current scan",
		}),
	}
}

// PageObserver adapts the metrics to the paginator observer interface for
// one record kind.
func (m *Metrics) PageObserver(kind string) paginator.Observer {
	return pageObserver{metrics: m, kind: kind}
}

type pageObserver struct {
	metrics *Metrics
	kind    string
}

func (o pageObserver) PageFetched(_, count int) {
	o.metrics.PagesFetched.WithLabelValues(o.kind).Inc()
	o.metrics.RecordsFetched.WithLabelValues(o.kind).Add(float64(count))
}

func (o pageObserver) PageFailed(int, error) {
	o.metrics.PagesFailed.WithLabelValues(o.kind).Inc()
}

// Handler returns an HTTP handler exposing the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
