package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/ohadacore/internal/domain"
)

const selectFiscalYears = `SELECT id, code, start_date, end_date, status FROM fiscal_years`

// FiscalRepository implements usecase.FiscalRepository.
type FiscalRepository struct {
	db    DBTX
	guard *Guard
}

// NewFiscalRepository creates a new FiscalRepository.
func NewFiscalRepository(db DBTX, guard *Guard) *FiscalRepository {
	return &FiscalRepository{db: db, guard: guard}
}

// GetYearByID retrieves a fiscal year.
func (r *FiscalRepository) GetYearByID(ctx context.Context, id string) (*domain.FiscalYear, error) {
	var year domain.FiscalYear

	err := r.guard.Run(ctx, "get_by_id", "fiscal_years", func(ctx context.Context) error {
		var err error
		year, err = scanFiscalYear(conn(ctx, r.db).QueryRow(ctx, selectFiscalYears+` WHERE id = $1`, id))
		return notFound(err, domain.ErrFiscalYearNotFound, id)
	})
	if err != nil {
		return nil, err
	}
	return &year, nil
}

// GetYears retrieves every fiscal year, most recent first.
func (r *FiscalRepository) GetYears(ctx context.Context) ([]domain.FiscalYear, error) {
	var years []domain.FiscalYear

	err := r.guard.Run(ctx, "get_all", "fiscal_years", func(ctx context.Context) error {
		rows, err := conn(ctx, r.db).Query(ctx, selectFiscalYears+` ORDER BY start_date DESC`)
		if err != nil {
			return err
		}
		years, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FiscalYear, error) {
			return scanFiscalYear(row)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return years, nil
}

// GetPeriods retrieves the periods of a fiscal year in date order.
func (r *FiscalRepository) GetPeriods(ctx context.Context, fiscalYearID string) ([]domain.FiscalPeriod, error) {
	var periods []domain.FiscalPeriod

	err := r.guard.Run(ctx, "get_periods", "fiscal_periods", func(ctx context.Context) error {
		rows, err := conn(ctx, r.db).Query(ctx, `
SELECT id, fiscal_year_id, code, start_date, end_date
FROM fiscal_periods
WHERE fiscal_year_id = $1
ORDER BY start_date`, fiscalYearID)
		if err != nil {
			return err
		}
		periods, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FiscalPeriod, error) {
			var (
				p          domain.FiscalPeriod
				start, end pgtype.Date
			)
			if err := row.Scan(&p.ID, &p.FiscalYearID, &p.Code, &start, &end); err != nil {
				return domain.FiscalPeriod{}, err
			}
			p.Start = pgDateToTime(start)
			p.End = pgDateToTime(end)
			return p, nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func scanFiscalYear(row pgx.Row) (domain.FiscalYear, error) {
	var (
		y          domain.FiscalYear
		start, end pgtype.Date
		status     string
	)
	if err := row.Scan(&y.ID, &y.Code, &start, &end, &status); err != nil {
		return domain.FiscalYear{}, err
	}
	y.Start = pgDateToTime(start)
	y.End = pgDateToTime(end)
	y.Status = domain.FiscalStatus(status)
	return y, nil
}
