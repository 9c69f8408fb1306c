package balance

import (
	"cmp"
	"slices"
	"strings"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

// TrialLine is the movement of one account.
type TrialLine struct {
	AccountCode string       `json:"account_code"`
	Label       string       `json:"label,omitempty"`
	Debit       money.Amount `json:"debit"`
	Credit      money.Amount `json:"credit"`
	Balance     money.Amount `json:"balance"`
}

// TrialBalance is the balance générale: every account touched, by code.
type TrialBalance struct {
	Lines       []TrialLine  `json:"lines"`
	TotalDebit  money.Amount `json:"total_debit"`
	TotalCredit money.Amount `json:"total_credit"`
}

// Balanced reports whether total debits equal total credits to the cent.
func (tb *TrialBalance) Balanced() bool {
	return domain.Balanced(tb.TotalDebit, tb.TotalCredit)
}

// Trial builds the trial balance. Balance is debit minus credit.
func Trial(entries []domain.JournalEntry) TrialBalance {
	byCode := make(map[string]*TrialLine)
	tb := TrialBalance{TotalDebit: money.Zero, TotalCredit: money.Zero}

	for _, e := range entries {
		for _, l := range e.Lines {
			code := strings.TrimSpace(l.AccountCode)
			tl, ok := byCode[code]
			if !ok {
				tl = &TrialLine{AccountCode: code, Debit: money.Zero, Credit: money.Zero}
				byCode[code] = tl
			}
			if tl.Label == "" {
				tl.Label = l.AccountLabel
			}
			tl.Debit = tl.Debit.Add(l.Debit)
			tl.Credit = tl.Credit.Add(l.Credit)
			tb.TotalDebit = tb.TotalDebit.Add(l.Debit)
			tb.TotalCredit = tb.TotalCredit.Add(l.Credit)
		}
	}

	tb.Lines = make([]TrialLine, 0, len(byCode))
	for _, tl := range byCode {
		tl.Balance = tl.Debit.Sub(tl.Credit)
		tb.Lines = append(tb.Lines, *tl)
	}
	slices.SortFunc(tb.Lines, func(a, b TrialLine) int { return cmp.Compare(a.AccountCode, b.AccountCode) })

	return tb
}
