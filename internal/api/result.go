package api

import (
	"context"
	"net/url"
	"sync/atomic"

	"pymerp/internal/metrics"
)

// Source tells a screen whether it is rendering live backend data or the
// built-in sample dataset. Screens must label fallback data; the dashboard
// zeroes it out instead of aggregating fabricated numbers.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result is the outcome of a read. List loads never fail outright: on any
// transport, HTTP, or decode problem the caller-provided fallback dataset is
// adopted and the reason recorded, so pages stay renderable while the caller
// decides how loudly to warn.
type Result[T any] struct {
	Data   T
	Source Source
	// Reason is the degradation cause, empty for live data.
	Reason string
	// Total is the backend's pagination total when provided, else len(Data).
	Total int
	// Generation orders concurrent fetches; state holders discard results
	// older than the newest one they have adopted.
	Generation uint64
}

// Degraded reports whether the data is the fallback dataset.
func (r Result[T]) Degraded() bool { return r.Source == SourceFallback }

// generation is a process-wide monotonic counter for in-flight fetches.
type generation struct {
	n atomic.Uint64
}

func (g *generation) next() uint64 { return g.n.Add(1) }

// list fetches a collection, substituting fallback on any failure.
func list[T any](ctx context.Context, c *Client, endpoint, path string, query url.Values, fallback []T) Result[[]T] {
	gen := c.gen.next()

	var data []T
	page, err := c.get(ctx, endpoint, path, query, &data)
	if err != nil {
		metrics.FallbacksTotal.WithLabelValues(endpoint).Inc()
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("list load degraded to sample data")
		fb := make([]T, len(fallback))
		copy(fb, fallback)
		return Result[[]T]{Data: fb, Source: SourceFallback, Reason: err.Error(), Total: len(fb), Generation: gen}
	}

	total := len(data)
	if page != nil && page.Total > 0 {
		total = page.Total
	}
	return Result[[]T]{Data: data, Source: SourceLive, Total: total, Generation: gen}
}

// one fetches a single record, substituting fallback on any failure.
func one[T any](ctx context.Context, c *Client, endpoint, path string, query url.Values, fallback T) Result[T] {
	gen := c.gen.next()

	var data T
	if _, err := c.get(ctx, endpoint, path, query, &data); err != nil {
		metrics.FallbacksTotal.WithLabelValues(endpoint).Inc()
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("load degraded to sample data")
		return Result[T]{Data: fallback, Source: SourceFallback, Reason: err.Error(), Total: 1, Generation: gen}
	}
	return Result[T]{Data: data, Source: SourceLive, Total: 1, Generation: gen}
}
