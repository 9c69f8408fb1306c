package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/ohadacore/internal/domain"
)

const selectEntries = `
SELECT e.id, e.entry_date, e.journal_code, e.reference, e.status, e.total_debit, e.total_credit,
       l.line_no, l.account_code, l.account_label, l.debit, l.credit, l.third_party_id, l.due_date,
       l.tax_pretax, l.tax_amount, l.tax_rate
FROM journal_entries e
LEFT JOIN entry_lines l ON l.entry_id = e.id`

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	db    DBTX
	guard *Guard
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(db DBTX, guard *Guard) *EntryRepository {
	return &EntryRepository{db: db, guard: guard}
}

// GetAll retrieves every journal entry with its lines, oldest first.
func (r *EntryRepository) GetAll(ctx context.Context) ([]domain.JournalEntry, error) {
	return r.list(ctx, "get_all", selectEntries+` ORDER BY e.entry_date, e.id, l.line_no`)
}

// ListByPeriod retrieves the entries dated inside the period.
func (r *EntryRepository) ListByPeriod(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error) {
	return r.list(ctx, "list_by_period",
		selectEntries+` WHERE e.entry_date BETWEEN $1 AND $2 ORDER BY e.entry_date, e.id, l.line_no`,
		dateToPg(period.Start), dateToPg(period.End))
}

// GetByID retrieves one entry with its lines.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	entries, err := r.list(ctx, "get_by_id", selectEntries+` WHERE e.id = $1 ORDER BY l.line_no`, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}
	return &entries[0], nil
}

func (r *EntryRepository) list(ctx context.Context, operation, query string, args ...any) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry

	err := r.guard.Run(ctx, operation, "journal_entries", func(ctx context.Context) error {
		rows, err := conn(ctx, r.db).Query(ctx, query, args...)
		if err != nil {
			return err
		}
		entries, err = scanEntries(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// scanEntries folds the joined rows into entries, one row per line. Rows of
// an entry are contiguous.
func scanEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		var (
			id, journal, reference, status string
			date                           pgtype.Date
			totalDebit, totalCredit        pgtype.Numeric
			lineNo                         pgtype.Int4
			code, label, partyID           pgtype.Text
			debit, credit                  pgtype.Numeric
			due                            pgtype.Date
			pretax, tax, rate              pgtype.Numeric
		)
		if err := rows.Scan(
			&id, &date, &journal, &reference, &status, &totalDebit, &totalCredit,
			&lineNo, &code, &label, &debit, &credit, &partyID, &due,
			&pretax, &tax, &rate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}

		if n := len(entries); n == 0 || entries[n-1].ID != id {
			entries = append(entries, domain.JournalEntry{
				ID:          id,
				Date:        pgDateToTime(date),
				JournalCode: journal,
				Reference:   reference,
				Status:      domain.EntryStatus(status),
				Lines:       []domain.EntryLine{},
				TotalDebit:  numericToAmount(totalDebit),
				TotalCredit: numericToAmount(totalCredit),
			})
		}

		// An entry without lines yields a single row of NULL line columns.
		if !lineNo.Valid {
			continue
		}

		e := &entries[len(entries)-1]
		e.Lines = append(e.Lines, domain.EntryLine{
			AccountCode:  code.String,
			AccountLabel: label.String,
			Debit:        numericToAmount(debit),
			Credit:       numericToAmount(credit),
			ThirdPartyID: partyID.String,
			DueDate:      pgDateToPtr(due),
			Tax:          taxInfo(pretax, tax, rate),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func notFound(err error, sentinel error, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", sentinel, id)
	}
	return err
}
