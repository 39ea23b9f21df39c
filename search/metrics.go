package search

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for search operations. Both are no-ops
// until a provider is installed (see internal/telemetry).
var (
	tracer = otel.Tracer("statespace.search")
	meter  = otel.Meter("statespace.search")
)

var (
	solveTotal    metric.Int64Counter
	solveLatency  metric.Float64Histogram
	edgesTotal    metric.Int64Counter
	uniqueTotal   metric.Int64Counter
	expandedTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveTotal, err = meter.Int64Counter(
			"search_solve_total",
			metric.WithDescription("Total number of searches by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveLatency, err = meter.Float64Histogram(
			"search_solve_duration_seconds",
			metric.WithDescription("Duration of searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesTotal, err = meter.Int64Counter(
			"search_edges_total",
			metric.WithDescription("Successor edges produced, revisits included"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		uniqueTotal, err = meter.Int64Counter(
			"search_unique_states_total",
			metric.WithDescription("States discovered for the first time"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		expandedTotal, err = meter.Int64Counter(
			"search_expanded_total",
			metric.WithDescription("Frontier states dequeued"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSolveMetrics records one finished (or aborted) search.
func recordSolveMetrics[S any](ctx context.Context, outcome string, d time.Duration, res *Result[S]) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	solveTotal.Add(ctx, 1, attrs)
	solveLatency.Record(ctx, d.Seconds(), attrs)
	edgesTotal.Add(ctx, int64(res.TotalEdges))
	uniqueTotal.Add(ctx, int64(res.UniqueStates))
	expandedTotal.Add(ctx, int64(res.Expanded))
}
