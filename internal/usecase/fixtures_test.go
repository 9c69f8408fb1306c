package usecase_test

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

type mv struct {
	code   string
	debit  string
	credit string
	party  string
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func entry(id string, date time.Time, status domain.EntryStatus, moves ...mv) domain.JournalEntry {
	e := domain.JournalEntry{ID: id, Date: date, JournalCode: "OD", Status: status}
	for _, m := range moves {
		l := domain.EntryLine{
			AccountCode:  m.code,
			Debit:        money.Zero,
			Credit:       money.Zero,
			ThirdPartyID: m.party,
		}
		if m.debit != "" {
			l.Debit = money.MustOf(m.debit)
		}
		if m.credit != "" {
			l.Credit = money.MustOf(m.credit)
		}
		e.Lines = append(e.Lines, l)
	}
	e.TotalDebit, e.TotalCredit = e.Totals()
	return e
}

func posted(id string, date time.Time, moves ...mv) domain.JournalEntry {
	return entry(id, date, domain.EntryValidated, moves...)
}

func draft(id string, date time.Time, moves ...mv) domain.JournalEntry {
	return entry(id, date, domain.EntryDraft, moves...)
}

// testCtx carries a disabled logger so usecases can log through zerolog.Ctx.
func testCtx() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func year2024(status domain.FiscalStatus) *domain.FiscalYear {
	return &domain.FiscalYear{
		ID:     "fy-2024",
		Code:   "2024",
		Start:  day(2024, time.January, 1),
		End:    day(2024, time.December, 31),
		Status: status,
	}
}
