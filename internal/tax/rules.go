// Package tax validates VAT placement, rates and amounts over the lines of
// journal entries, and provides the pretax/tax/total conversions.
package tax

import (
	"fmt"

	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/money"
)

// Fixed accounting tolerances.
var (
	errorTolerance    = money.MustOf("0.01")
	roundingTolerance = money.MustOf("0.005")
)

// Rules configures the validator. Thresholds are policy constants observed
// in the jurisdictions served, kept configurable rather than hard law.
type Rules struct {
	Accounts      chart.Plan
	MaxRate       money.Amount
	StandardRates []money.Amount
	ImbalanceHigh money.Amount
	ImbalanceLow  money.Amount
}

// DefaultRules returns the OHADA-zone defaults: 30% ceiling, standard rates
// 0, 5.5, 10, 18, 19, 19.25 and 20, imbalance warning beyond 10x or below 0.1x.
func DefaultRules() Rules {
	return Rules{
		Accounts: chart.Default(),
		MaxRate:  money.New(30),
		StandardRates: []money.Amount{
			money.Zero,
			money.MustOf("5.5"),
			money.New(10),
			money.New(18),
			money.New(19),
			money.MustOf("19.25"),
			money.New(20),
		},
		ImbalanceHigh: money.New(10),
		ImbalanceLow:  money.MustOf("0.1"),
	}
}

// RulesFromChart builds rules from a chart file, keeping defaults for any
// VAT policy value the file leaves empty.
func RulesFromChart(f chart.File) (Rules, error) {
	r := DefaultRules()
	r.Accounts = f.Accounts

	var err error
	if f.VAT.MaxRate != "" {
		if r.MaxRate, err = money.Of(f.VAT.MaxRate); err != nil {
			return Rules{}, fmt.Errorf("vat max_rate: %w", err)
		}
	}
	if f.VAT.ImbalanceHigh != "" {
		if r.ImbalanceHigh, err = money.Of(f.VAT.ImbalanceHigh); err != nil {
			return Rules{}, fmt.Errorf("vat imbalance_high: %w", err)
		}
	}
	if f.VAT.ImbalanceLow != "" {
		if r.ImbalanceLow, err = money.Of(f.VAT.ImbalanceLow); err != nil {
			return Rules{}, fmt.Errorf("vat imbalance_low: %w", err)
		}
	}
	if len(f.VAT.StandardRates) > 0 {
		rates := make([]money.Amount, 0, len(f.VAT.StandardRates))
		for _, s := range f.VAT.StandardRates {
			rate, err := money.Of(s)
			if err != nil {
				return Rules{}, fmt.Errorf("vat standard_rates: %w", err)
			}
			rates = append(rates, rate)
		}
		r.StandardRates = rates
	}

	return r, nil
}

// IsTaxAccount reports whether code belongs to any VAT family.
func (r Rules) IsTaxAccount(code string) bool {
	return r.Accounts.TaxAccounts().Match(code)
}

// IsDeductibleTaxAccount reports whether code is a deductible (récupérable)
// VAT account. Due and credit VAT accounts nested under a deductible prefix,
// such as 44567 under 4456, are not deductible.
func (r Rules) IsDeductibleTaxAccount(code string) bool {
	return r.Accounts.DeductibleVAT.Match(code) && !r.settlement(code)
}

// IsCollectedTaxAccount reports whether code is a collected (facturée) VAT account.
func (r Rules) IsCollectedTaxAccount(code string) bool {
	return r.Accounts.CollectedVAT.Match(code) && !r.settlement(code)
}

// settlement reports whether code is a VAT due or VAT credit account.
func (r Rules) settlement(code string) bool {
	return r.Accounts.DueVAT.Match(code) || r.Accounts.CreditVAT.Match(code)
}

func (r Rules) isStandardRate(rate money.Amount) bool {
	for _, s := range r.StandardRates {
		if s.Equal(rate) {
			return true
		}
	}
	return false
}

func (r Rules) nearestStandardRate(rate money.Amount) (money.Amount, bool) {
	if len(r.StandardRates) == 0 {
		return money.Zero, false
	}
	best := r.StandardRates[0]
	for _, s := range r.StandardRates[1:] {
		if s.Sub(rate).Abs().LessThan(best.Sub(rate).Abs()) {
			best = s
		}
	}
	return best, true
}

var defaultRules = DefaultRules()

// IsTaxAccount reports whether code belongs to a VAT family of the default chart.
func IsTaxAccount(code string) bool { return defaultRules.IsTaxAccount(code) }

// IsDeductibleTaxAccount reports whether code is a deductible VAT account of the default chart.
func IsDeductibleTaxAccount(code string) bool { return defaultRules.IsDeductibleTaxAccount(code) }

// IsCollectedTaxAccount reports whether code is a collected VAT account of the default chart.
func IsCollectedTaxAccount(code string) bool { return defaultRules.IsCollectedTaxAccount(code) }
