package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/depreciation"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/infrastructure/metrics"
)

// DepreciationUseCase reconciles fixed-asset depreciation with the ledger.
type DepreciationUseCase struct {
	ledger     ledgerReader
	assetRepo  AssetRepository
	fiscalRepo FiscalRepository
	plan       chart.Plan
	metrics    *metrics.Metrics
}

// NewDepreciationUseCase creates a new DepreciationUseCase.
func NewDepreciationUseCase(
	entryRepo EntryRepository,
	assetRepo AssetRepository,
	fiscalRepo FiscalRepository,
	plan chart.Plan,
	opts Options,
	m *metrics.Metrics,
) *DepreciationUseCase {
	return &DepreciationUseCase{
		ledger:     ledgerReader{entries: entryRepo, includeDrafts: opts.IncludeDrafts},
		assetRepo:  assetRepo,
		fiscalRepo: fiscalRepo,
		plan:       plan,
		metrics:    m,
	}
}

// PeriodInput selects a period either by fiscal year or by explicit dates.
// FiscalYearID wins when both are set.
type PeriodInput struct {
	FiscalYearID string
	From         time.Time
	To           time.Time
}

// resolvePeriod turns a PeriodInput into a period.
func resolvePeriod(ctx context.Context, fiscalRepo FiscalRepository, input PeriodInput) (domain.Period, *domain.FiscalYear, error) {
	if input.FiscalYearID != "" {
		year, err := fiscalRepo.GetYearByID(ctx, input.FiscalYearID)
		if err != nil {
			return domain.Period{}, nil, repoErr(ctx, "fiscal years", err)
		}
		return year.Period(), year, nil
	}

	if input.From.IsZero() || input.To.IsZero() {
		return domain.Period{}, nil, fmt.Errorf("%w: a fiscal year or both period bounds are required", domain.ErrInvalidPeriod)
	}
	p, err := domain.NewPeriod(input.From, input.To)
	return p, nil, err
}

// Reconcile compares theoretical and recorded depreciation over the period.
func (uc *DepreciationUseCase) Reconcile(ctx context.Context, input PeriodInput) (summary *depreciation.Summary, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindDepreciation, start, err) }()

	period, _, err := resolvePeriod(ctx, uc.fiscalRepo, input)
	if err != nil {
		return nil, err
	}

	// Missing-month detection looks at whole months.
	months := period.Months()
	window := domain.Period{Start: months[0].First(), End: months[len(months)-1].Last()}

	var (
		assets  []domain.FixedAsset
		entries []domain.JournalEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = uc.assetRepo.GetAll(gctx)
		if err != nil {
			return repoErr(gctx, "assets", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = uc.ledger.inPeriod(gctx, window)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s, err := depreciation.Reconcile(assets, entries, period, uc.plan)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MissingMonths.Set(float64(len(s.MissingMonths)))
	}
	if len(s.MissingMonths) > 0 {
		zerolog.Ctx(ctx).Warn().
			Int("missing_months", len(s.MissingMonths)).
			Str("ecart", s.Ecart.String()).
			Msg("depreciation runs missing")
	}

	return &s, nil
}
