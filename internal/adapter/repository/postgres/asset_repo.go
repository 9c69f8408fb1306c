package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/ohadacore/internal/domain"
)

// AssetRepository implements usecase.AssetRepository.
type AssetRepository struct {
	db    DBTX
	guard *Guard
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(db DBTX, guard *Guard) *AssetRepository {
	return &AssetRepository{db: db, guard: guard}
}

// GetAll retrieves every fixed asset.
func (r *AssetRepository) GetAll(ctx context.Context) ([]domain.FixedAsset, error) {
	var assets []domain.FixedAsset

	err := r.guard.Run(ctx, "get_all", "assets", func(ctx context.Context) error {
		rows, err := conn(ctx, r.db).Query(ctx, `
SELECT id, label, account_code, acquisition_date, acquisition_value, residual_value,
       useful_life_years, method, status
FROM assets
ORDER BY id`)
		if err != nil {
			return err
		}
		assets, err = pgx.CollectRows(rows, scanAsset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func scanAsset(row pgx.CollectableRow) (domain.FixedAsset, error) {
	var (
		a               domain.FixedAsset
		acquired        pgtype.Date
		value, residual pgtype.Numeric
		life            int32
		method, status  string
	)
	if err := row.Scan(&a.ID, &a.Label, &a.AccountCode, &acquired, &value, &residual, &life, &method, &status); err != nil {
		return domain.FixedAsset{}, err
	}
	a.AcquisitionDate = pgDateToTime(acquired)
	a.AcquisitionValue = numericToAmount(value)
	a.ResidualValue = numericToAmount(residual)
	a.UsefulLifeYears = int(life)
	a.Method = domain.DepreciationMethod(method)
	a.Status = domain.AssetStatus(status)
	return a, nil
}
