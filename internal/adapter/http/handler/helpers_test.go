package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/ohadacore/internal/adapter/http/dto"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound},
		{"fiscal year not found", fmt.Errorf("load: %w", domain.ErrFiscalYearNotFound), http.StatusNotFound},
		{"malformed record", domain.ErrMalformedRecord, http.StatusBadRequest},
		{"invalid period", domain.ErrInvalidPeriod, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"division by zero", money.ErrDivisionByZero, http.StatusBadRequest},
		{"repository down", fmt.Errorf("%w: entries: boom", domain.ErrRepositoryUnavailable), http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/aging", nil)
	rec := httptest.NewRecorder()

	respondError(rec, req, errors.New("pq: secret detail"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "internal_error" || resp.Message != "internal server error" {
		t.Fatalf("unexpected body %+v", resp)
	}
}

func TestPeriodQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reports/treasury?from=2024-01-01&to=2024-03-31", nil)
	input, err := periodQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !input.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) || !input.To.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected bounds %+v", input)
	}

	req = httptest.NewRequest(http.MethodGet, "/reports/sig?fiscal_year=fy-2024", nil)
	input, err = periodQuery(req)
	if err != nil || input.FiscalYearID != "fy-2024" || !input.From.IsZero() {
		t.Fatalf("unexpected input %+v err=%v", input, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/reports/treasury?from=yesterday", nil)
	if _, err := periodQuery(req); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected malformed record, got %v", err)
	}
}
