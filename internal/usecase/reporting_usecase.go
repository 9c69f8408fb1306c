package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ohadacore/internal/balance"
	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/infrastructure/metrics"
)

// ReportingUseCase builds balance-based reports: treasury, SIG, ratios and
// trial balance. Reports of closed fiscal years are cached.
type ReportingUseCase struct {
	ledger     ledgerReader
	fiscalRepo FiscalRepository
	cache      ReportCache
	cacheTTL   time.Duration
	plan       chart.Plan
	metrics    *metrics.Metrics
}

// NewReportingUseCase creates a new ReportingUseCase. cache may be nil.
func NewReportingUseCase(
	entryRepo EntryRepository,
	fiscalRepo FiscalRepository,
	cache ReportCache,
	cacheTTL time.Duration,
	plan chart.Plan,
	opts Options,
	m *metrics.Metrics,
) *ReportingUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultReportCacheTTL
	}

	return &ReportingUseCase{
		ledger:     ledgerReader{entries: entryRepo, includeDrafts: opts.IncludeDrafts},
		fiscalRepo: fiscalRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		plan:       plan,
		metrics:    m,
	}
}

// SIGInput selects the period and an optional prior fiscal year to compare with.
type SIGInput struct {
	PeriodInput
	PriorYearID string
}

// Treasury returns the class-5 position over the period.
func (uc *ReportingUseCase) Treasury(ctx context.Context, input PeriodInput) (pos balance.TreasuryPosition, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindTreasury, start, err) }()

	entries, err := uc.load(ctx, input)
	if err != nil {
		return balance.TreasuryPosition{}, err
	}
	return balance.Treasury(entries, uc.plan), nil
}

// TrialBalance returns the balance générale over the period.
func (uc *ReportingUseCase) TrialBalance(ctx context.Context, input PeriodInput) (tb balance.TrialBalance, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindTrialBalance, start, err) }()

	entries, err := uc.load(ctx, input)
	if err != nil {
		return balance.TrialBalance{}, err
	}

	tb = balance.Trial(entries)
	if !tb.Balanced() {
		zerolog.Ctx(ctx).Warn().
			Str("debit", tb.TotalDebit.String()).
			Str("credit", tb.TotalCredit.String()).
			Msg("trial balance does not balance")
	}
	return tb, nil
}

// SIG returns the management balances, compared with a prior year when requested.
func (uc *ReportingUseCase) SIG(ctx context.Context, input SIGInput) (report balance.SIGReport, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindSIG, start, err) }()

	current, err := uc.sig(ctx, input.PeriodInput)
	if err != nil {
		return balance.SIGReport{}, err
	}
	if input.PriorYearID == "" {
		return current, nil
	}

	prior, err := uc.sig(ctx, PeriodInput{FiscalYearID: input.PriorYearID})
	if err != nil {
		return balance.SIGReport{}, err
	}
	return balance.CompareSIG(current, prior), nil
}

func (uc *ReportingUseCase) sig(ctx context.Context, input PeriodInput) (balance.SIGReport, error) {
	period, year, err := resolvePeriod(ctx, uc.fiscalRepo, input)
	if err != nil {
		return balance.SIGReport{}, err
	}
	return cached(ctx, uc, metrics.KindSIG, year, func() (balance.SIGReport, error) {
		entries, err := uc.ledger.inPeriod(ctx, period)
		if err != nil {
			return balance.SIGReport{}, err
		}
		return balance.SIG(entries), nil
	})
}

// Ratios returns the financial ratios over the period.
func (uc *ReportingUseCase) Ratios(ctx context.Context, input PeriodInput) (ratios balance.Ratios, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindRatios, start, err) }()

	period, year, err := resolvePeriod(ctx, uc.fiscalRepo, input)
	if err != nil {
		return balance.Ratios{}, err
	}
	return cached(ctx, uc, metrics.KindRatios, year, func() (balance.Ratios, error) {
		entries, err := uc.ledger.inPeriod(ctx, period)
		if err != nil {
			return balance.Ratios{}, err
		}
		return balance.ComputeRatios(entries, uc.plan), nil
	})
}

func (uc *ReportingUseCase) load(ctx context.Context, input PeriodInput) ([]domain.JournalEntry, error) {
	period, _, err := resolvePeriod(ctx, uc.fiscalRepo, input)
	if err != nil {
		return nil, err
	}
	return uc.ledger.inPeriod(ctx, period)
}

// cached serves a report of a closed fiscal year from the cache, building and
// storing it on a miss. Cache failures are logged and otherwise ignored.
func cached[T any](ctx context.Context, uc *ReportingUseCase, kind string, year *domain.FiscalYear, build func() (T, error)) (T, error) {
	if uc.cache == nil || year == nil || !year.Closed() {
		return build()
	}

	log := zerolog.Ctx(ctx)
	key := reportCachePrefix + kind + ":" + year.ID

	raw, found, err := uc.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("key", key).Msg("report cache read failed")
		uc.lookup(kind, "error")
	case found:
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			uc.lookup(kind, "hit")
			return v, nil
		}
		log.Warn().Str("key", key).Msg("discarding undecodable cached report")
		if err := uc.cache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("report cache delete failed")
		}
		uc.lookup(kind, "miss")
	default:
		uc.lookup(kind, "miss")
	}

	v, err := build()
	if err != nil {
		return v, err
	}

	raw, err = json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("report cache encode failed")
		return v, nil
	}
	if err := uc.cache.Set(ctx, key, raw, uc.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
	return v, nil
}

func (uc *ReportingUseCase) lookup(kind, result string) {
	if uc.metrics != nil {
		uc.metrics.CacheLookups.WithLabelValues(kind, result).Inc()
	}
}
