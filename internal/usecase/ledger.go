package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/infrastructure/metrics"
)

// Options configures how usecases read the ledger.
type Options struct {
	// IncludeDrafts feeds draft entries to the analyzers. Off by default:
	// drafts may be unbalanced.
	IncludeDrafts bool
}

// ledgerReader fetches entries and applies the draft policy.
type ledgerReader struct {
	entries       EntryRepository
	includeDrafts bool
}

func (r ledgerReader) filter(entries []domain.JournalEntry) []domain.JournalEntry {
	if r.includeDrafts {
		return entries
	}
	return domain.PostedOnly(entries)
}

func (r ledgerReader) all(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := r.entries.GetAll(ctx)
	if err != nil {
		return nil, repoErr(ctx, "journal entries", err)
	}
	return r.filter(entries), nil
}

func (r ledgerReader) inPeriod(ctx context.Context, p domain.Period) ([]domain.JournalEntry, error) {
	entries, err := r.entries.ListByPeriod(ctx, p)
	if err != nil {
		return nil, repoErr(ctx, "journal entries", err)
	}
	return r.filter(domain.InPeriod(entries, p)), nil
}

// repoErr classifies a repository failure. Lookup misses pass through,
// everything else becomes ErrRepositoryUnavailable.
func repoErr(ctx context.Context, collection string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, context.Canceled) {
		return err
	}

	zerolog.Ctx(ctx).Warn().Err(err).Str("collection", collection).Msg("repository read failed")

	if errors.Is(err, domain.ErrRepositoryUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrRepositoryUnavailable, collection, err)
}

// observe records one analysis run.
func observe(m *metrics.Metrics, kind string, start time.Time, err error) {
	if m == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.AnalysesRun.WithLabelValues(kind, outcome).Inc()
	m.AnalysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
