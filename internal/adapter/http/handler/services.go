package handler

import (
	"context"
	"time"

	"github.com/iho/ohadacore/internal/balance"
	"github.com/iho/ohadacore/internal/depreciation"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/provision"
	"github.com/iho/ohadacore/internal/tax"
	"github.com/iho/ohadacore/internal/usecase"
)

// TaxService validates VAT lines.
type TaxService interface {
	ValidateLines(ctx context.Context, lines []domain.EntryLine) (tax.Report, error)
	ValidateEntry(ctx context.Context, entryID string) (*usecase.EntryTaxReport, error)
}

// AgingService ages third-party balances.
type AgingService interface {
	Analyze(ctx context.Context, input usecase.AgingInput) (*usecase.AgingResult, error)
}

// ProvisionService computes and stores doubtful-debt provisions.
type ProvisionService interface {
	Calculate(ctx context.Context, asOf time.Time) (provision.Summary, error)
	Compare(ctx context.Context, input usecase.CompareInput) (provision.Comparison, error)
	Record(ctx context.Context, input usecase.RecordInput) ([]domain.ProvisionRecord, error)
	Recorded(ctx context.Context, sessionID string) ([]domain.ProvisionRecord, error)
}

// FiscalService lists fiscal years and periods.
type FiscalService interface {
	Years(ctx context.Context) ([]domain.FiscalYear, error)
	Periods(ctx context.Context, yearID string) ([]domain.FiscalPeriod, error)
}

// DepreciationService reconciles depreciation with the ledger.
type DepreciationService interface {
	Reconcile(ctx context.Context, input usecase.PeriodInput) (*depreciation.Summary, error)
}

// ReportService builds balance-based reports.
type ReportService interface {
	Treasury(ctx context.Context, input usecase.PeriodInput) (balance.TreasuryPosition, error)
	TrialBalance(ctx context.Context, input usecase.PeriodInput) (balance.TrialBalance, error)
	SIG(ctx context.Context, input usecase.SIGInput) (balance.SIGReport, error)
	Ratios(ctx context.Context, input usecase.PeriodInput) (balance.Ratios, error)
}
