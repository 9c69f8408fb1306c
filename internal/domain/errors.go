package domain

import (
	"errors"
	"fmt"
)

var (
	// Structural errors
	ErrMalformedRecord       = errors.New("malformed record")
	ErrRepositoryUnavailable = errors.New("repository unavailable")
	ErrInvalidPeriod         = errors.New("invalid period: end precedes start")
	ErrInvalidRole           = errors.New("invalid third-party role")

	// Lookup errors, all matching ErrNotFound
	ErrNotFound           = errors.New("not found")
	ErrEntryNotFound      = fmt.Errorf("journal entry %w", ErrNotFound)
	ErrThirdPartyNotFound = fmt.Errorf("third party %w", ErrNotFound)
	ErrFiscalYearNotFound = fmt.Errorf("fiscal year %w", ErrNotFound)
	ErrProvisionNotFound  = fmt.Errorf("provision record %w", ErrNotFound)
)
