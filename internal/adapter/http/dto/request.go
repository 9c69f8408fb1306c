package dto

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/usecase"
)

// DateLayout is the format of every date in query strings and request bodies.
const DateLayout = "2006-01-02"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateTaxRequest carries lines to check against the VAT rules.
type ValidateTaxRequest struct {
	Lines []domain.EntryLine `json:"lines" validate:"required,min=1"`
}

// Validate checks the request shape. Line contents are checked by the validator itself.
func (r *ValidateTaxRequest) Validate() error {
	return check(r)
}

// RecordProvisionsRequest stores the calculated provisions in a closure session.
type RecordProvisionsRequest struct {
	SessionID string `json:"session_id" validate:"required,max=64"`
	AsOf      string `json:"as_of"      validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks the request shape.
func (r *RecordProvisionsRequest) Validate() error {
	return check(r)
}

// ToUseCaseInput converts to use case input. An empty as_of means today.
func (r *RecordProvisionsRequest) ToUseCaseInput(now time.Time) (usecase.RecordInput, error) {
	asOf, err := ParseDate(r.AsOf, now)
	if err != nil {
		return usecase.RecordInput{}, err
	}
	return usecase.RecordInput{SessionID: r.SessionID, AsOf: asOf}, nil
}

// ParseDate parses a YYYY-MM-DD date, returning fallback when s is empty.
func ParseDate(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", domain.ErrMalformedRecord, s)
	}
	return t, nil
}

func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}
	return nil
}
