package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/ohadacore/internal/aging"
	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/infrastructure/metrics"
)

// AgingUseCase ages customer and supplier balances.
type AgingUseCase struct {
	ledger    ledgerReader
	partyRepo ThirdPartyRepository
	plan      chart.Plan
	metrics   *metrics.Metrics
}

// NewAgingUseCase creates a new AgingUseCase.
func NewAgingUseCase(
	entryRepo EntryRepository,
	partyRepo ThirdPartyRepository,
	plan chart.Plan,
	opts Options,
	m *metrics.Metrics,
) *AgingUseCase {
	return &AgingUseCase{
		ledger:    ledgerReader{entries: entryRepo, includeDrafts: opts.IncludeDrafts},
		partyRepo: partyRepo,
		plan:      plan,
		metrics:   m,
	}
}

// AgingInput selects the side and the reference date. ThirdPartyID narrows
// the result to one party.
type AgingInput struct {
	Role         domain.Role
	AsOf         time.Time
	ThirdPartyID string
}

// AgingResult is the aging of every party with a balance plus the portfolio totals.
type AgingResult struct {
	Role      domain.Role      `json:"role"`
	AsOf      time.Time        `json:"as_of"`
	Analyses  []aging.Analysis `json:"analyses"`
	Portfolio aging.Portfolio  `json:"portfolio"`
}

// Analyze ages the balances as seen on input.AsOf. Entries dated after AsOf
// are ignored.
func (uc *AgingUseCase) Analyze(ctx context.Context, input AgingInput) (result *AgingResult, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindAging, start, err) }()

	role, err := domain.ParseRole(string(input.Role))
	if err != nil {
		return nil, err
	}
	asOf := domain.DateOf(input.AsOf)

	if input.ThirdPartyID != "" {
		party, err := uc.partyRepo.GetByID(ctx, input.ThirdPartyID)
		if err != nil {
			return nil, repoErr(ctx, "third parties", err)
		}
		if !party.Plays(role) {
			return nil, fmt.Errorf("%w: %s is not a %s", domain.ErrInvalidRole, party.ID, role)
		}
	}

	var (
		entries []domain.JournalEntry
		parties []domain.ThirdParty
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = uc.ledger.all(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		parties, err = uc.partyRepo.GetAll(gctx)
		if err != nil {
			return repoErr(gctx, "third parties", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	known := make([]domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if !domain.DateOf(e.Date).After(asOf) {
			known = append(known, e)
		}
	}

	analyses, err := aging.Analyze(known, parties, role, asOf, uc.plan)
	if err != nil {
		return nil, err
	}

	if input.ThirdPartyID != "" {
		analyses = onlyParty(analyses, input.ThirdPartyID)
	}

	portfolio := aging.Summarize(role, analyses)
	zerolog.Ctx(ctx).Debug().
		Str("role", string(role)).
		Int("parties", portfolio.Parties).
		Str("total_due", portfolio.TotalDue.String()).
		Msg("aging analysed")

	return &AgingResult{
		Role:      role,
		AsOf:      asOf,
		Analyses:  analyses,
		Portfolio: portfolio,
	}, nil
}

func onlyParty(analyses []aging.Analysis, id string) []aging.Analysis {
	kept := make([]aging.Analysis, 0, 1)
	for _, a := range analyses {
		if a.ThirdPartyID == id {
			kept = append(kept, a)
		}
	}
	return kept
}
