package paginator

import "go.uber.org/zap"

// Observer receives per-page progress callbacks from a fetch. Implementations
// must be safe to call from the collector loop only; the paginator never
// invokes them concurrently.
type Observer interface {
	PageFetched(offset, count int)
	PageFailed(offset int, err error)
}

// NopObserver ignores all callbacks.
type NopObserver struct{}

func (NopObserver) PageFetched(int, int)  {}
func (NopObserver) PageFailed(int, error) {}

// LogObserver reports page progress through a zap logger.
type LogObserver struct {
	Logger *zap.Logger
	Kind   string // record kind label, e.g. "markets" or "trades"
}

func (o LogObserver) PageFetched(offset, count int) {
	o.Logger.Debug("page fetched",
		zap.String("kind", o.Kind),
		zap.Int("offset", offset),
		zap.Int("count", count),
	)
}

func (o LogObserver) PageFailed(offset int, err error) {
	o.Logger.Warn("page failed",
		zap.String("kind", o.Kind),
		zap.Int("offset", offset),
		zap.Error(err),
	)
}

// MultiObserver fans callbacks out to several observers.
type MultiObserver []Observer

func (m MultiObserver) PageFetched(offset, count int) {
	for _, o := range m {
		o.PageFetched(offset, count)
	}
}

func (m MultiObserver) PageFailed(offset int, err error) {
	for _, o := range m {
		o.PageFailed(offset, err)
	}
}
