package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/infrastructure/metrics"
	"github.com/iho/ohadacore/internal/tax"
)

// TaxUseCase validates VAT lines, submitted or stored.
type TaxUseCase struct {
	entryRepo EntryRepository
	rules     tax.Rules
	metrics   *metrics.Metrics
}

// NewTaxUseCase creates a new TaxUseCase.
func NewTaxUseCase(entryRepo EntryRepository, rules tax.Rules, m *metrics.Metrics) *TaxUseCase {
	return &TaxUseCase{
		entryRepo: entryRepo,
		rules:     rules,
		metrics:   m,
	}
}

// EntryTaxReport is the VAT validation of a stored entry.
type EntryTaxReport struct {
	EntryID string     `json:"entry_id"`
	Status  string     `json:"status"`
	Report  tax.Report `json:"report"`
}

// ValidateLines validates a set of lines that is not necessarily stored.
func (uc *TaxUseCase) ValidateLines(ctx context.Context, lines []domain.EntryLine) (report tax.Report, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindTax, start, err) }()

	report, err = uc.rules.Validate(lines)
	if err != nil {
		return tax.Report{}, err
	}

	uc.record(ctx, report)
	return report, nil
}

// ValidateEntry validates the lines of a stored entry.
func (uc *TaxUseCase) ValidateEntry(ctx context.Context, entryID string) (result *EntryTaxReport, err error) {
	start := time.Now()
	defer func() { observe(uc.metrics, metrics.KindTax, start, err) }()

	entry, err := uc.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, repoErr(ctx, "journal entries", err)
	}

	report, err := uc.rules.Validate(entry.Lines)
	if err != nil {
		return nil, err
	}

	uc.record(ctx, report)
	return &EntryTaxReport{
		EntryID: entry.ID,
		Status:  string(entry.Status),
		Report:  report,
	}, nil
}

func (uc *TaxUseCase) record(ctx context.Context, report tax.Report) {
	if uc.metrics != nil {
		uc.metrics.VATFindings.WithLabelValues("error").Add(float64(len(report.Errors)))
		uc.metrics.VATFindings.WithLabelValues("warning").Add(float64(len(report.Warnings)))
	}

	zerolog.Ctx(ctx).Debug().
		Bool("valid", report.IsValid).
		Int("errors", len(report.Errors)).
		Int("warnings", len(report.Warnings)).
		Msg("vat validation")
}
