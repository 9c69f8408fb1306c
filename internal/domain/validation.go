package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/iho/ohadacore/internal/money"
)

// MaxLinesPerEntry bounds the size of a single entry.
const MaxLinesPerEntry = 10000

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// checkTags runs the struct-tag rules and converts each failure into a
// malformed-record error naming the field.
func checkTags(kind, id string, record any) []error {
	err := structValidator().Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{fmt.Errorf("%w: %s %s: %v", ErrMalformedRecord, kind, id, err)}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%w: %s %s: field %s fails %q", ErrMalformedRecord, kind, id, fe.Namespace(), fe.Tag()))
	}
	return errs
}

// ValidateLine checks the structural invariants of a line: an alphanumeric
// account code and exactly one non-negative, non-zero side.
func ValidateLine(index int, l EntryLine) error {
	code := strings.TrimSpace(l.AccountCode)
	errs := checkTags("line", strconv.Itoa(index), l)

	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: line %d (%s): negative amount", ErrMalformedRecord, index, code))
	}

	switch {
	case !l.Debit.IsZero() && !l.Credit.IsZero():
		errs = append(errs, fmt.Errorf("%w: line %d (%s): both debit and credit are set", ErrMalformedRecord, index, code))
	case l.Debit.IsZero() && l.Credit.IsZero():
		errs = append(errs, fmt.Errorf("%w: line %d (%s): neither debit nor credit is set", ErrMalformedRecord, index, code))
	}

	return errors.Join(errs...)
}

// ValidateLines validates every line and joins all failures.
func ValidateLines(lines []EntryLine) error {
	if len(lines) > MaxLinesPerEntry {
		return fmt.Errorf("%w: %d lines exceeds limit of %d", ErrMalformedRecord, len(lines), MaxLinesPerEntry)
	}

	var errs []error
	for i, l := range lines {
		if err := ValidateLine(i, l); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ValidateEntry checks an entry's structure. A validated entry must balance
// to the cent; a draft may be temporarily unbalanced.
func ValidateEntry(e *JournalEntry) error {
	errs := checkTags("entry", e.ID, e)

	if e.Date.IsZero() {
		errs = append(errs, fmt.Errorf("%w: entry %s: date is required", ErrMalformedRecord, e.ID))
	}

	if err := ValidateLines(e.Lines); err != nil {
		errs = append(errs, fmt.Errorf("entry %s: %w", e.ID, err))
	}

	debit, credit := e.Totals()
	if e.Validated() {
		if len(e.Lines) < 2 {
			errs = append(errs, fmt.Errorf("%w: entry %s: a validated entry needs at least two lines", ErrMalformedRecord, e.ID))
		}
		if !Balanced(debit, credit) {
			errs = append(errs, fmt.Errorf("%w: entry %s: unbalanced, debit=%s credit=%s", ErrMalformedRecord, e.ID, debit, credit))
		}
	}

	if !e.TotalDebit.IsZero() && !e.TotalDebit.Equal(debit) {
		errs = append(errs, fmt.Errorf("%w: entry %s: declared total debit %s, lines sum to %s", ErrMalformedRecord, e.ID, e.TotalDebit, debit))
	}
	if !e.TotalCredit.IsZero() && !e.TotalCredit.Equal(credit) {
		errs = append(errs, fmt.Errorf("%w: entry %s: declared total credit %s, lines sum to %s", ErrMalformedRecord, e.ID, e.TotalCredit, credit))
	}

	return errors.Join(errs...)
}

// ValidateThirdParty checks a third party's structure.
func ValidateThirdParty(p *ThirdParty) error {
	return errors.Join(checkTags("third party", p.ID, p)...)
}

// ValidateAsset checks 0 <= residual <= acquisition and a positive useful
// life for active assets.
func ValidateAsset(a *FixedAsset) error {
	errs := checkTags("asset", a.ID, a)

	if a.AcquisitionDate.IsZero() {
		errs = append(errs, fmt.Errorf("%w: asset %s: acquisition date is required", ErrMalformedRecord, a.ID))
	}
	if a.ResidualValue.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: asset %s: negative residual value", ErrMalformedRecord, a.ID))
	}
	if a.ResidualValue.GreaterThan(a.AcquisitionValue) {
		errs = append(errs, fmt.Errorf("%w: asset %s: residual value %s exceeds acquisition value %s", ErrMalformedRecord, a.ID, a.ResidualValue, a.AcquisitionValue))
	}
	if a.Active() && a.UsefulLifeYears <= 0 {
		errs = append(errs, fmt.Errorf("%w: asset %s: active asset needs a positive useful life", ErrMalformedRecord, a.ID))
	}

	return errors.Join(errs...)
}

// ValidateProvision checks a provision record's structure.
func ValidateProvision(p *ProvisionRecord) error {
	errs := checkTags("provision", p.ID, p)
	if p.Amount.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: provision %s: negative amount %s", ErrMalformedRecord, p.ID, p.Amount))
	}
	return errors.Join(errs...)
}

// Balanced reports whether debit equals credit once rounded to the cent.
func Balanced(debit, credit money.Amount) bool {
	return debit.RoundCurrency().Equal(credit.RoundCurrency())
}
