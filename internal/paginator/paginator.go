// Package paginator fetches complete result sets from offset-paginated APIs
// using a bounded worker pool. The only end-of-data signal such APIs give is
// a page that is not full, so the collector keeps dispatching offsets while
// full pages keep arriving and drains in-flight requests once the end is
// seen.
package paginator

import (
	"context"
	"fmt"
)

// Default configuration values.
const (
	DefaultPageSize            = 100
	DefaultConcurrency         = 10
	DefaultMaxConsecutiveEmpty = 10
)

// FetchPage retrieves one page of records at the given offset. It must be
// safe for concurrent use. Returning an error marks the page as failed; the
// paginator treats failed pages past offset 0 as empty rather than aborting
// the fetch.
type FetchPage[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// Options configures a paginated fetch.
type Options struct {
	PageSize    int // records requested per page
	Concurrency int // maximum in-flight page fetches

	// MaxRecords caps the accumulated record count. Zero means unbounded.
	// Already-dispatched requests are allowed to finish; the result is
	// truncated to the cap on return.
	MaxRecords int

	// MaxConsecutiveEmpty halts dispatching after this many empty or failed
	// pages in a row, bounding runaway scans against a degraded upstream.
	MaxConsecutiveEmpty int

	// Observer receives per-page progress callbacks. Optional.
	Observer Observer
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.MaxConsecutiveEmpty <= 0 {
		o.MaxConsecutiveEmpty = DefaultMaxConsecutiveEmpty
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	return o
}

type pageResult[T any] struct {
	offset  int
	records []T
	err     error
}

// FetchAll retrieves every record satisfying the query behind fetch.
//
// The first page is fetched synchronously; an error there is fatal because
// there is nothing to paginate from, and a short first page completes the
// fetch without spinning up workers. Otherwise a pool of workers pulls
// offsets from a frontier owned by the collector loop below, which is the
// only writer of all shared state. No ordering is guaranteed among the
// returned records.
func FetchAll[T any](ctx context.Context, fetch FetchPage[T], opts Options) ([]T, error) {
	opts = opts.withDefaults()
	obs := opts.Observer

	first, err := fetch(ctx, 0, opts.PageSize)
	if err != nil {
		obs.PageFailed(0, err)
		return nil, fmt.Errorf("fetch first page: %w", err)
	}
	obs.PageFetched(0, len(first))

	records := first
	if len(first) < opts.PageSize {
		return capped(records, opts.MaxRecords), nil
	}
	if opts.MaxRecords > 0 && len(records) >= opts.MaxRecords {
		return records[:opts.MaxRecords], nil
	}

	// Buffer both channels to the pool size so workers can always deliver
	// their final result and exit, even when the collector abandons the
	// fetch early.
	offsets := make(chan int, opts.Concurrency)
	results := make(chan pageResult[T], opts.Concurrency)
	defer close(offsets)

	for i := 0; i < opts.Concurrency; i++ {
		go worker(ctx, fetch, opts.PageSize, offsets, results)
	}

	var (
		frontier = opts.PageSize // next unclaimed offset
		inFlight = 0
		endSeen  = false
		emptyRun = 0
	)

	dispatch := func() {
		offsets <- frontier
		frontier += opts.PageSize
		inFlight++
	}
	underCap := func() bool {
		return opts.MaxRecords == 0 || len(records) < opts.MaxRecords
	}

	for i := 0; i < opts.Concurrency; i++ {
		dispatch()
	}

	for inFlight > 0 {
		select {
		case <-ctx.Done():
			// In-flight requests finish into the buffered channel and are
			// discarded; there are no side effects to undo.
			return nil, ctx.Err()
		case res := <-results:
			inFlight--

			if res.err != nil {
				// Degrade the failed page to empty. Failures do not signal
				// end-of-data, so the scan continues past the gap unless too
				// many pile up in a row.
				obs.PageFailed(res.offset, res.err)
				emptyRun++
				if !endSeen && emptyRun < opts.MaxConsecutiveEmpty && underCap() {
					dispatch()
				}
				continue
			}

			obs.PageFetched(res.offset, len(res.records))
			records = append(records, res.records...)

			if len(res.records) < opts.PageSize {
				// A legitimately short page means the result set ends at or
				// before this offset. Stop dispatching, drain in-flight.
				endSeen = true
				continue
			}

			emptyRun = 0
			if !endSeen && underCap() {
				dispatch()
			}
		}
	}

	return capped(records, opts.MaxRecords), nil
}

func worker[T any](ctx context.Context, fetch FetchPage[T], pageSize int, offsets <-chan int, results chan<- pageResult[T]) {
	for off := range offsets {
		recs, err := fetch(ctx, off, pageSize)
		results <- pageResult[T]{offset: off, records: recs, err: err}
	}
}

func capped[T any](records []T, max int) []T {
	if max > 0 && len(records) > max {
		return records[:max]
	}
	return records
}
