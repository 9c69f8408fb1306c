package tax

import (
	"fmt"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

// Issue codes.
const (
	CodeMissingTaxAccount  = "missing_tax_account"
	CodeAmountMismatch     = "tax_amount_mismatch"
	CodeAmountRounding     = "tax_amount_rounding"
	CodeLineAmountMismatch = "tax_line_amount_mismatch"
	CodeDeductibleOnCredit = "deductible_vat_on_credit"
	CodeCollectedOnDebit   = "collected_vat_on_debit"
	CodeNegativeRate       = "negative_rate"
	CodeRateAboveCeiling   = "rate_above_ceiling"
	CodeNonStandardRate    = "non_standard_rate"
	CodeVATImbalance       = "vat_imbalance"
)

// NoLine marks an issue that concerns the line set as a whole.
const NoLine = -1

// Issue is a single finding of the validator.
type Issue struct {
	Code    string `json:"code"`
	Line    int    `json:"line"`
	Account string `json:"account,omitempty"`
	Message string `json:"message"`
}

// Report is the outcome of a validation run. Business-rule failures are
// reported here and never returned as errors.
type Report struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []Issue  `json:"errors"`
	Warnings    []Issue  `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

func newReport() *Report {
	return &Report{
		Errors:      []Issue{},
		Warnings:    []Issue{},
		Suggestions: []string{},
	}
}

func (r *Report) fail(i Issue)       { r.Errors = append(r.Errors, i) }
func (r *Report) warn(i Issue)       { r.Warnings = append(r.Warnings, i) }
func (r *Report) suggest(msg string) { r.Suggestions = append(r.Suggestions, msg) }

// Validate runs the default rules over lines.
func Validate(lines []domain.EntryLine) (Report, error) {
	return defaultRules.Validate(lines)
}

// Validate runs every check over the full line set. The returned error is
// non-nil only for structurally malformed lines.
func (r Rules) Validate(lines []domain.EntryLine) (Report, error) {
	if err := domain.ValidateLines(lines); err != nil {
		return Report{}, err
	}

	rep := newReport()
	r.checkPresence(lines, rep)
	r.checkAmounts(lines, rep)
	r.checkTaxLineAmounts(lines, rep)
	r.checkPlacement(lines, rep)
	r.checkRates(lines, rep)
	r.checkCrossBalance(lines, rep)

	rep.IsValid = len(rep.Errors) == 0
	return *rep, nil
}

func (r Rules) checkPresence(lines []domain.EntryLine, rep *Report) {
	hasMetadata, hasTaxAccount := false, false
	for _, l := range lines {
		if l.Tax != nil {
			hasMetadata = true
		}
		if r.IsTaxAccount(l.AccountCode) {
			hasTaxAccount = true
		}
	}
	if hasMetadata && !hasTaxAccount {
		rep.fail(Issue{
			Code:    CodeMissingTaxAccount,
			Line:    NoLine,
			Message: "tax metadata present but no tax account line",
		})
		rep.suggest("add a VAT line on a deductible account (445x) for purchases or a collected account (443x) for sales")
	}
}

func (r Rules) checkAmounts(lines []domain.EntryLine, rep *Report) {
	for i, l := range lines {
		if l.Tax == nil {
			continue
		}
		computed := l.Tax.Pretax.Percent(l.Tax.Rate)
		diff := computed.Sub(l.Tax.Tax).Abs()

		switch {
		case diff.GreaterThan(errorTolerance):
			rep.fail(Issue{
				Code:    CodeAmountMismatch,
				Line:    i,
				Account: l.AccountCode,
				Message: fmt.Sprintf("declared tax %s does not match %s%% of %s (expected %s)",
					l.Tax.Tax.StringFixed(2), l.Tax.Rate, l.Tax.Pretax.StringFixed(2), computed.RoundCurrency().StringFixed(2)),
			})
			rep.suggest(fmt.Sprintf("set the tax amount of line %d to %s", i, computed.RoundCurrency().StringFixed(2)))
		case diff.GreaterThan(roundingTolerance):
			rep.warn(Issue{
				Code:    CodeAmountRounding,
				Line:    i,
				Account: l.AccountCode,
				Message: fmt.Sprintf("declared tax %s differs from %s by a rounding amount",
					l.Tax.Tax.StringFixed(2), computed.RoundCurrency().StringFixed(2)),
			})
		}
	}
}

func (r Rules) checkTaxLineAmounts(lines []domain.EntryLine, rep *Report) {
	for i, l := range lines {
		if l.Tax == nil || !r.IsTaxAccount(l.AccountCode) {
			continue
		}
		if l.Amount().Sub(l.Tax.Tax).Abs().GreaterThan(errorTolerance) {
			rep.fail(Issue{
				Code:    CodeLineAmountMismatch,
				Line:    i,
				Account: l.AccountCode,
				Message: fmt.Sprintf("tax account line amount %s must equal the tax amount %s, not pretax plus tax",
					l.Amount().StringFixed(2), l.Tax.Tax.StringFixed(2)),
			})
		}
	}
}

func (r Rules) checkPlacement(lines []domain.EntryLine, rep *Report) {
	for i, l := range lines {
		switch {
		case r.IsDeductibleTaxAccount(l.AccountCode) && !l.IsDebit():
			rep.fail(Issue{
				Code:    CodeDeductibleOnCredit,
				Line:    i,
				Account: l.AccountCode,
				Message: fmt.Sprintf("deductible VAT account %s must be on the debit side", l.AccountCode),
			})
			rep.suggest(fmt.Sprintf("move line %d (%s) to the debit side", i, l.AccountCode))
		case r.IsCollectedTaxAccount(l.AccountCode) && l.IsDebit():
			rep.fail(Issue{
				Code:    CodeCollectedOnDebit,
				Line:    i,
				Account: l.AccountCode,
				Message: fmt.Sprintf("collected VAT account %s must be on the credit side", l.AccountCode),
			})
			rep.suggest(fmt.Sprintf("move line %d (%s) to the credit side", i, l.AccountCode))
		}
	}
}

func (r Rules) checkRates(lines []domain.EntryLine, rep *Report) {
	for i, l := range lines {
		if l.Tax == nil {
			continue
		}
		rate := l.Tax.Rate

		switch {
		case rate.IsNegative():
			rep.fail(Issue{
				Code:    CodeNegativeRate,
				Line:    i,
				Account: l.AccountCode,
				Message: fmt.Sprintf("tax rate %s%% is negative", rate),
			})
		case rate.GreaterThan(r.MaxRate):
			rep.fail(Issue{
				Code:    CodeRateAboveCeiling,
				Line:    i,
				Account: l.AccountCode,
				Message: fmt.Sprintf("tax rate %s%% exceeds the %s%% ceiling", rate, r.MaxRate),
			})
		case !rate.IsZero() && !r.isStandardRate(rate):
			rep.warn(Issue{
				Code:    CodeNonStandardRate,
				Line:    i,
				Account: l.AccountCode,
				Message: fmt.Sprintf("tax rate %s%% is not a standard rate", rate),
			})
			if nearest, ok := r.nearestStandardRate(rate); ok {
				rep.suggest(fmt.Sprintf("check the rate of line %d, the nearest standard rate is %s%%", i, nearest))
			}
		}
	}
}

func (r Rules) checkCrossBalance(lines []domain.EntryLine, rep *Report) {
	deductible, collected := money.Zero, money.Zero
	for _, l := range lines {
		if r.IsDeductibleTaxAccount(l.AccountCode) {
			deductible = deductible.Add(l.Debit)
		}
		if r.IsCollectedTaxAccount(l.AccountCode) {
			collected = collected.Add(l.Credit)
		}
	}
	if deductible.IsZero() || collected.IsZero() {
		return
	}

	ratio, err := deductible.Div(collected)
	if err != nil {
		return
	}
	if ratio.GreaterThan(r.ImbalanceHigh) || ratio.LessThan(r.ImbalanceLow) {
		rep.warn(Issue{
			Code: CodeVATImbalance,
			Line: NoLine,
			Message: fmt.Sprintf("deductible VAT %s and collected VAT %s are strongly imbalanced",
				deductible.StringFixed(2), collected.StringFixed(2)),
		})
	}
}
