package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/ohadacore/internal/domain"
)

const selectThirdParties = `SELECT id, name, type, account_code, balance FROM third_parties`

// ThirdPartyRepository implements usecase.ThirdPartyRepository.
type ThirdPartyRepository struct {
	db    DBTX
	guard *Guard
}

// NewThirdPartyRepository creates a new ThirdPartyRepository.
func NewThirdPartyRepository(db DBTX, guard *Guard) *ThirdPartyRepository {
	return &ThirdPartyRepository{db: db, guard: guard}
}

// GetAll retrieves every customer and supplier.
func (r *ThirdPartyRepository) GetAll(ctx context.Context) ([]domain.ThirdParty, error) {
	var parties []domain.ThirdParty

	err := r.guard.Run(ctx, "get_all", "third_parties", func(ctx context.Context) error {
		rows, err := conn(ctx, r.db).Query(ctx, selectThirdParties+` ORDER BY id`)
		if err != nil {
			return err
		}
		parties, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ThirdParty, error) {
			return scanThirdParty(row)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return parties, nil
}

// GetByID retrieves a third party by ID.
func (r *ThirdPartyRepository) GetByID(ctx context.Context, id string) (*domain.ThirdParty, error) {
	var party domain.ThirdParty

	err := r.guard.Run(ctx, "get_by_id", "third_parties", func(ctx context.Context) error {
		var err error
		party, err = scanThirdParty(conn(ctx, r.db).QueryRow(ctx, selectThirdParties+` WHERE id = $1`, id))
		return notFound(err, domain.ErrThirdPartyNotFound, id)
	})
	if err != nil {
		return nil, err
	}
	return &party, nil
}

func scanThirdParty(row pgx.Row) (domain.ThirdParty, error) {
	var (
		p         domain.ThirdParty
		partyType string
		balance   pgtype.Numeric
	)
	if err := row.Scan(&p.ID, &p.Name, &partyType, &p.AccountCode, &balance); err != nil {
		return domain.ThirdParty{}, err
	}
	p.Type = domain.PartyType(partyType)
	p.Balance = numericToAmount(balance)
	return p, nil
}
