package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/infrastructure/metrics"
)

// Guard runs repository queries behind a circuit breaker and the retrier,
// recording query metrics. An open breaker surfaces as
// domain.ErrRepositoryUnavailable.
type Guard struct {
	breaker *gobreaker.CircuitBreaker
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewGuard creates a guard named after the resource it protects.
func NewGuard(name string, retrier *Retrier, m *metrics.Metrics) *Guard {
	return &Guard{
		breaker: gobreaker.NewCircuitBreaker(breakerSettings(name, m)),
		retrier: retrier,
		metrics: m,
	}
}

func breakerSettings(name string, m *metrics.Metrics) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		// Misses and cancellations say nothing about the database's health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, domain.ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, _, to gobreaker.State) {
			if m != nil {
				m.BreakerChanges.WithLabelValues(name, to.String()).Inc()
			}
		},
	}
}

// Run executes fn. Inside a transaction fn runs once: a failed statement
// aborts the transaction, so retrying belongs to the transaction as a whole.
func (g *Guard) Run(ctx context.Context, operation, table string, fn func(ctx context.Context) error) error {
	start := time.Now()

	_, err := g.breaker.Execute(func() (interface{}, error) {
		if _, inTx := txFrom(ctx); inTx || g.retrier == nil {
			return nil, fn(ctx)
		}
		return nil, g.retrier.Retry(ctx, operation+" "+table, func() error { return fn(ctx) })
	})

	g.observe(operation, table, start, err)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s: %w", domain.ErrRepositoryUnavailable, table, err)
	}
	return err
}

func (g *Guard) observe(operation, table string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	g.metrics.DBQueries.WithLabelValues(operation, table).Inc()
	g.metrics.DBDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		g.metrics.DBErrors.WithLabelValues(operation).Inc()
	}
}
