package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iho/ohadacore/internal/money"
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

const (
	EntryDraft     EntryStatus = "draft"
	EntryValidated EntryStatus = "validated"
)

// JournalEntry is one posting event. Entries are append-only: corrections are
// recorded as reversing entries, never as edits.
type JournalEntry struct {
	ID          string       `json:"id"           validate:"required"`
	Date        time.Time    `json:"date"`
	JournalCode string       `json:"journal_code" validate:"max=10"`
	Reference   string       `json:"reference,omitempty"`
	Status      EntryStatus  `json:"status"       validate:"oneof=draft validated"`
	Lines       []EntryLine  `json:"lines"`
	TotalDebit  money.Amount `json:"total_debit"`
	TotalCredit money.Amount `json:"total_credit"`
}

// Validated reports whether the entry has been validated.
func (e *JournalEntry) Validated() bool {
	return e.Status == EntryValidated
}

// Totals sums the debit and credit sides of the lines.
func (e *JournalEntry) Totals() (debit, credit money.Amount) {
	debit, credit = money.Zero, money.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// EntryLine is a single debit or credit movement inside an entry.
type EntryLine struct {
	AccountCode  string       `json:"account_code"             validate:"required,alphanum,max=20"`
	AccountLabel string       `json:"account_label,omitempty"`
	Debit        money.Amount `json:"debit"`
	Credit       money.Amount `json:"credit"`
	ThirdPartyID string       `json:"third_party_id,omitempty"`
	DueDate      *time.Time   `json:"due_date,omitempty"`
	Tax          *TaxInfo     `json:"tax,omitempty"`
}

// TaxInfo is the VAT metadata of a line. A line either has no tax info (nil)
// or all three values.
type TaxInfo struct {
	Pretax money.Amount `json:"pretax"`
	Tax    money.Amount `json:"tax"`
	Rate   money.Amount `json:"rate"`
}

// UnmarshalJSON rejects a tax object missing any of its three values.
func (t *TaxInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Pretax *money.Amount `json:"pretax"`
		Tax    *money.Amount `json:"tax"`
		Rate   *money.Amount `json:"rate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.Pretax == nil {
		missing = append(missing, "pretax")
	}
	if raw.Tax == nil {
		missing = append(missing, "tax")
	}
	if raw.Rate == nil {
		missing = append(missing, "rate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: tax info without %s", ErrMalformedRecord, strings.Join(missing, ", "))
	}

	*t = TaxInfo{Pretax: *raw.Pretax, Tax: *raw.Tax, Rate: *raw.Rate}
	return nil
}

// IsDebit reports whether the line moves the debit side.
func (l EntryLine) IsDebit() bool {
	return !l.Debit.IsZero()
}

// Amount returns the non-zero side of the line.
func (l EntryLine) Amount() money.Amount {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// Net returns debit minus credit.
func (l EntryLine) Net() money.Amount {
	return l.Debit.Sub(l.Credit)
}

// PostedOnly keeps validated entries, preserving order.
func PostedOnly(entries []JournalEntry) []JournalEntry {
	posted := make([]JournalEntry, 0, len(entries))
	for _, e := range entries {
		if e.Validated() {
			posted = append(posted, e)
		}
	}
	return posted
}

// InPeriod keeps entries dated within p, preserving order.
func InPeriod(entries []JournalEntry, p Period) []JournalEntry {
	kept := make([]JournalEntry, 0, len(entries))
	for _, e := range entries {
		if p.Contains(e.Date) {
			kept = append(kept, e)
		}
	}
	return kept
}
