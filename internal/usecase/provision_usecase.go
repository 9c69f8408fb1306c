package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/infrastructure/metrics"
	"github.com/iho/ohadacore/internal/money"
	"github.com/iho/ohadacore/internal/provision"
)

// ProvisionUseCase computes doubtful-debt provisions from customer aging.
type ProvisionUseCase struct {
	aging         *AgingUseCase
	provisionRepo ProvisionRepository
	tx            Transactor
	idGen         IDGenerator
	metrics       *metrics.Metrics
}

// NewProvisionUseCase creates a new ProvisionUseCase.
func NewProvisionUseCase(
	agingUC *AgingUseCase,
	provisionRepo ProvisionRepository,
	tx Transactor,
	idGen IDGenerator,
	m *metrics.Metrics,
) *ProvisionUseCase {
	return &ProvisionUseCase{
		aging:         agingUC,
		provisionRepo: provisionRepo,
		tx:            tx,
		idGen:         idGen,
		metrics:       m,
	}
}

// Calculate recommends provisions from the customer aging on asOf.
func (uc *ProvisionUseCase) Calculate(ctx context.Context, asOf time.Time) (summary provision.Summary, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindProvision, start, err) }()

	return uc.calculate(ctx, asOf)
}

func (uc *ProvisionUseCase) calculate(ctx context.Context, asOf time.Time) (provision.Summary, error) {
	aged, err := uc.aging.Analyze(ctx, AgingInput{Role: domain.RoleCustomer, AsOf: asOf})
	if err != nil {
		return provision.Summary{}, err
	}
	return provision.Calculate(aged.Analyses), nil
}

// CompareInput selects the closure session and reference date.
type CompareInput struct {
	SessionID string
	AsOf      time.Time
}

// Compare sets the recommendation against the provisions recorded in a session.
func (uc *ProvisionUseCase) Compare(ctx context.Context, input CompareInput) (cmp provision.Comparison, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindProvision, start, err) }()

	if input.SessionID == "" {
		return provision.Comparison{}, fmt.Errorf("%w: session id is required", domain.ErrMalformedRecord)
	}

	summary, err := uc.calculate(ctx, input.AsOf)
	if err != nil {
		return provision.Comparison{}, err
	}

	recorded, err := uc.provisionRepo.GetBySession(ctx, input.SessionID)
	if err != nil {
		return provision.Comparison{}, repoErr(ctx, "provisions", err)
	}

	cmp = provision.CompareWithRecorded(summary, recorded)
	if uc.metrics != nil {
		uc.metrics.ProvisionGap.Set(cmp.Gap.Float64())
	}
	if !cmp.Gap.IsZero() {
		zerolog.Ctx(ctx).Info().
			Str("session_id", input.SessionID).
			Str("gap", cmp.Gap.String()).
			Msg("provision gap to review")
	}

	return cmp, nil
}

// Recorded lists the provisions stored in a session, or in every session
// when sessionID is empty.
func (uc *ProvisionUseCase) Recorded(ctx context.Context, sessionID string) ([]domain.ProvisionRecord, error) {
	var (
		records []domain.ProvisionRecord
		err     error
	)
	if sessionID == "" {
		records, err = uc.provisionRepo.GetAll(ctx)
	} else {
		records, err = uc.provisionRepo.GetBySession(ctx, sessionID)
	}
	if err != nil {
		return nil, repoErr(ctx, "provisions", err)
	}
	if records == nil {
		records = []domain.ProvisionRecord{}
	}
	return records, nil
}

// RecordInput selects the closure session the provisions are stored in.
type RecordInput struct {
	SessionID string
	AsOf      time.Time
}

// Record stores the recommendation in a session: existing records of a party
// are updated, new parties get a record, and parties no longer provisioned
// are set to zero.
func (uc *ProvisionUseCase) Record(ctx context.Context, input RecordInput) (records []domain.ProvisionRecord, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindProvision, start, err) }()

	if input.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrMalformedRecord)
	}

	summary, err := uc.calculate(ctx, input.AsOf)
	if err != nil {
		return nil, err
	}

	err = uc.inTx(ctx, func(ctx context.Context) error {
		records, err = uc.store(ctx, input.SessionID, summary)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// store writes summary into the session. Existing records are read inside
// the transaction so concurrent recordings of a session do not interleave.
func (uc *ProvisionUseCase) store(ctx context.Context, sessionID string, summary provision.Summary) ([]domain.ProvisionRecord, error) {
	existing, err := uc.provisionRepo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, repoErr(ctx, "provisions", err)
	}
	byParty := make(map[string]domain.ProvisionRecord, len(existing))
	for _, r := range existing {
		byParty[r.ThirdPartyID] = r
	}

	now := time.Now().UTC()
	calculated := make(map[string]bool, len(summary.Provisions))
	records := make([]domain.ProvisionRecord, 0, len(summary.Provisions))

	for _, p := range summary.Provisions {
		calculated[p.ThirdPartyID] = true

		if r, ok := byParty[p.ThirdPartyID]; ok {
			if r, err = uc.update(ctx, r, p.Amount, now); err != nil {
				return nil, err
			}
			records = append(records, r)
			continue
		}

		r := domain.ProvisionRecord{
			ID:           uc.idGen.Generate(),
			SessionID:    sessionID,
			ThirdPartyID: p.ThirdPartyID,
			Amount:       p.Amount,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := domain.ValidateProvision(&r); err != nil {
			return nil, err
		}
		if err := uc.provisionRepo.Create(ctx, &r); err != nil {
			return nil, fmt.Errorf("failed to create provision for %s: %w", p.ThirdPartyID, err)
		}
		uc.count("create")
		records = append(records, r)
	}

	for _, r := range existing {
		if calculated[r.ThirdPartyID] || r.Amount.IsZero() {
			continue
		}
		if r, err = uc.update(ctx, r, money.Zero, now); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, nil
}

func (uc *ProvisionUseCase) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if uc.tx == nil {
		return fn(ctx)
	}
	return uc.tx.RunInTx(ctx, fn)
}

func (uc *ProvisionUseCase) update(ctx context.Context, r domain.ProvisionRecord, amount money.Amount, now time.Time) (domain.ProvisionRecord, error) {
	if r.Amount.Equal(amount) {
		return r, nil
	}

	if err := uc.provisionRepo.Update(ctx, r.ID, domain.ProvisionPatch{Amount: &amount, UpdatedAt: now}); err != nil {
		return r, fmt.Errorf("failed to update provision %s: %w", r.ID, err)
	}
	uc.count("update")

	r.Amount = amount
	r.UpdatedAt = now
	return r, nil
}

func (uc *ProvisionUseCase) count(operation string) {
	if uc.metrics != nil {
		uc.metrics.ProvisionsStored.WithLabelValues(operation).Inc()
	}
}
