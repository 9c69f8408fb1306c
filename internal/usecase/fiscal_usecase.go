package usecase

import (
	"context"

	"github.com/iho/ohadacore/internal/domain"
)

// FiscalUseCase lists fiscal years and their periods, the selectors every
// period-based report takes.
type FiscalUseCase struct {
	fiscalRepo FiscalRepository
}

// NewFiscalUseCase creates a new FiscalUseCase.
func NewFiscalUseCase(fiscalRepo FiscalRepository) *FiscalUseCase {
	return &FiscalUseCase{fiscalRepo: fiscalRepo}
}

// Years lists every fiscal year.
func (uc *FiscalUseCase) Years(ctx context.Context) ([]domain.FiscalYear, error) {
	years, err := uc.fiscalRepo.GetYears(ctx)
	if err != nil {
		return nil, repoErr(ctx, "fiscal years", err)
	}
	if years == nil {
		years = []domain.FiscalYear{}
	}
	return years, nil
}

// Periods lists the periods of a fiscal year. An unknown year is an error,
// a year without periods is not.
func (uc *FiscalUseCase) Periods(ctx context.Context, yearID string) ([]domain.FiscalPeriod, error) {
	if _, err := uc.fiscalRepo.GetYearByID(ctx, yearID); err != nil {
		return nil, repoErr(ctx, "fiscal years", err)
	}

	periods, err := uc.fiscalRepo.GetPeriods(ctx, yearID)
	if err != nil {
		return nil, repoErr(ctx, "fiscal periods", err)
	}
	if periods == nil {
		periods = []domain.FiscalPeriod{}
	}
	return periods, nil
}
