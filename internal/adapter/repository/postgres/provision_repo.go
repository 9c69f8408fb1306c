package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/ohadacore/internal/domain"
)

const selectProvisions = `SELECT id, session_id, third_party_id, amount, created_at, updated_at FROM provisions`

// ProvisionRepository implements usecase.ProvisionRepository.
type ProvisionRepository struct {
	db    DBTX
	guard *Guard
}

// NewProvisionRepository creates a new ProvisionRepository.
func NewProvisionRepository(db DBTX, guard *Guard) *ProvisionRepository {
	return &ProvisionRepository{db: db, guard: guard}
}

// GetAll retrieves every recorded provision.
func (r *ProvisionRepository) GetAll(ctx context.Context) ([]domain.ProvisionRecord, error) {
	return r.list(ctx, "get_all", selectProvisions+` ORDER BY session_id, third_party_id`)
}

// GetBySession retrieves the provisions recorded by a closing session.
func (r *ProvisionRepository) GetBySession(ctx context.Context, sessionID string) ([]domain.ProvisionRecord, error) {
	return r.list(ctx, "get_by_session", selectProvisions+` WHERE session_id = $1 ORDER BY third_party_id`, sessionID)
}

func (r *ProvisionRepository) list(ctx context.Context, operation, query string, args ...any) ([]domain.ProvisionRecord, error) {
	var records []domain.ProvisionRecord

	err := r.guard.Run(ctx, operation, "provisions", func(ctx context.Context) error {
		rows, err := conn(ctx, r.db).Query(ctx, query, args...)
		if err != nil {
			return err
		}
		records, err = pgx.CollectRows(rows, scanProvision)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a provision record.
func (r *ProvisionRepository) Create(ctx context.Context, record *domain.ProvisionRecord) error {
	return r.guard.Run(ctx, "create", "provisions", func(ctx context.Context) error {
		_, err := conn(ctx, r.db).Exec(ctx, `
INSERT INTO provisions (id, session_id, third_party_id, amount, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
			record.ID,
			record.SessionID,
			record.ThirdPartyID,
			amountToNumeric(record.Amount),
			timeToPgTimestamptz(record.CreatedAt),
			timeToPgTimestamptz(record.UpdatedAt),
		)
		return err
	})
}

// Update applies a partial update to a provision record.
func (r *ProvisionRepository) Update(ctx context.Context, id string, patch domain.ProvisionPatch) error {
	amount := pgtype.Numeric{}
	if patch.Amount != nil {
		amount = amountToNumeric(*patch.Amount)
	}

	return r.guard.Run(ctx, "update", "provisions", func(ctx context.Context) error {
		tag, err := conn(ctx, r.db).Exec(ctx, `
UPDATE provisions
SET amount = COALESCE($2, amount), updated_at = $3
WHERE id = $1`,
			id, amount, timeToPgTimestamptz(patch.UpdatedAt),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrProvisionNotFound, id)
		}
		return nil
	})
}

func scanProvision(row pgx.CollectableRow) (domain.ProvisionRecord, error) {
	var (
		p                domain.ProvisionRecord
		amount           pgtype.Numeric
		created, updated pgtype.Timestamptz
	)
	if err := row.Scan(&p.ID, &p.SessionID, &p.ThirdPartyID, &amount, &created, &updated); err != nil {
		return domain.ProvisionRecord{}, err
	}
	p.Amount = numericToAmount(amount)
	p.CreatedAt = created.Time
	p.UpdatedAt = updated.Time
	return p, nil
}
