// Package balance aggregates account balances by code prefix. NetDebit and
// NetCredit are the only primitives; treasury, SIG, ratios and the trial
// balance are built on them.
package balance

import (
	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

var hundred = money.New(100)

// NetDebit sums debit minus credit over every line whose account starts with
// one of prefixes.
func NetDebit(entries []domain.JournalEntry, prefixes ...string) money.Amount {
	family := chart.Prefixes(prefixes)
	total := money.Zero
	for _, e := range entries {
		for _, l := range e.Lines {
			if family.Match(l.AccountCode) {
				total = total.Add(l.Debit).Sub(l.Credit)
			}
		}
	}
	return total
}

// NetCredit sums credit minus debit over every line whose account starts with
// one of prefixes.
func NetCredit(entries []domain.JournalEntry, prefixes ...string) money.Amount {
	family := chart.Prefixes(prefixes)
	total := money.Zero
	for _, e := range entries {
		for _, l := range e.Lines {
			if family.Match(l.AccountCode) {
				total = total.Add(l.Credit).Sub(l.Debit)
			}
		}
	}
	return total
}

// SafeDiv divides num by den, returning zero when den is zero. Reports built
// on it show 0 for an empty base instead of failing.
func SafeDiv(num, den money.Amount) money.Amount {
	q, err := num.Div(den)
	if err != nil {
		return money.Zero
	}
	return q
}

// PercentOf returns part / base * 100 rounded to one decimal, zero for an
// empty base.
func PercentOf(part, base money.Amount) money.Amount {
	return SafeDiv(part.Mul(hundred), base).RoundPercent()
}

// Variance returns the change from prior to current in percent of |prior|,
// rounded to one decimal, zero when prior is zero.
func Variance(current, prior money.Amount) money.Amount {
	return SafeDiv(current.Sub(prior).Mul(hundred), prior.Abs()).RoundPercent()
}
