// Package depreciation reconciles theoretical straight-line depreciation of
// fixed assets with what was actually posted to the ledger.
package depreciation

import (
	"fmt"

	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

var monthsPerYear = money.New(12)

// AssetLine is the theoretical depreciation of one active asset.
type AssetLine struct {
	AssetID     string                    `json:"asset_id"`
	Label       string                    `json:"label,omitempty"`
	AccountCode string                    `json:"account_code"`
	Method      domain.DepreciationMethod `json:"method"`
	Supported   bool                      `json:"supported"`
	Annual      money.Amount              `json:"annual"`
	Months      int                       `json:"months"`
	Theoretical money.Amount              `json:"theoretical"`
}

// Summary is the outcome of a reconciliation run.
type Summary struct {
	Period        domain.Period  `json:"period"`
	Assets        []AssetLine    `json:"assets"`
	Theoretical   money.Amount   `json:"theoretical"`
	Recorded      money.Amount   `json:"recorded"`
	Ecart         money.Amount   `json:"ecart"`
	MissingMonths []domain.Month `json:"missing_months"`
}

// Balanced reports whether recorded and theoretical agree and no month was skipped.
func (s *Summary) Balanced() bool {
	return s.Ecart.IsZero() && len(s.MissingMonths) == 0
}

// Reconcile computes, over period:
//   - theoretical depreciation of each active linear asset, annual / 12 per
//     month in which the asset is depreciating. Other methods are listed
//     unsupported and left out of the total;
//   - recorded depreciation, credits minus debits on the accumulation
//     family for entries dated inside the period;
//   - the months with an asset depreciating but no entry touching the
//     accumulation family.
func Reconcile(assets []domain.FixedAsset, entries []domain.JournalEntry, period domain.Period, plan chart.Plan) (Summary, error) {
	if period.End.Before(period.Start) {
		return Summary{}, fmt.Errorf("%w: %s > %s", domain.ErrInvalidPeriod, period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
	}

	months := period.Months()
	s := Summary{
		Period:        period,
		Assets:        []AssetLine{},
		Theoretical:   money.Zero,
		Recorded:      money.Zero,
		MissingMonths: []domain.Month{},
	}

	for i := range assets {
		a := &assets[i]
		if !a.Active() {
			continue
		}

		line := AssetLine{
			AssetID:     a.ID,
			Label:       a.Label,
			AccountCode: a.AccountCode,
			Method:      a.Method,
			Supported:   a.Method == domain.MethodLinear,
			Annual:      money.Zero,
			Theoretical: money.Zero,
		}
		for _, m := range months {
			if a.DepreciatingIn(m) {
				line.Months++
			}
		}

		if line.Supported && a.UsefulLifeYears > 0 {
			annual, err := a.DepreciableBase().Div(money.New(int64(a.UsefulLifeYears)))
			if err != nil {
				return Summary{}, err
			}
			monthly, err := annual.Div(monthsPerYear)
			if err != nil {
				return Summary{}, err
			}
			line.Annual = annual.RoundCurrency()
			line.Theoretical = monthly.MulInt(int64(line.Months)).RoundCurrency()
			s.Theoretical = s.Theoretical.Add(line.Theoretical)
		}

		s.Assets = append(s.Assets, line)
	}

	touched := make(map[domain.Month]bool)
	for _, e := range entries {
		inPeriod := period.Contains(e.Date)
		for _, l := range e.Lines {
			if !plan.DepreciationAccumulation.Match(l.AccountCode) {
				continue
			}
			touched[domain.MonthOf(e.Date)] = true
			if inPeriod {
				s.Recorded = s.Recorded.Add(l.Credit).Sub(l.Debit)
			}
		}
	}

	for _, m := range months {
		if touched[m] {
			continue
		}
		for i := range assets {
			if assets[i].DepreciatingIn(m) {
				s.MissingMonths = append(s.MissingMonths, m)
				break
			}
		}
	}

	s.Ecart = s.Recorded.Sub(s.Theoretical).Abs()
	return s, nil
}
