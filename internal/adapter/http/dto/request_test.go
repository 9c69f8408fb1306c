package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

func TestValidateTaxRequest(t *testing.T) {
	empty := ValidateTaxRequest{}
	if err := empty.Validate(); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected malformed record for empty lines, got %v", err)
	}

	req := ValidateTaxRequest{Lines: []domain.EntryLine{{AccountCode: "601", Debit: money.New(100)}}}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestRecordProvisionsRequest(t *testing.T) {
	now := time.Date(2024, 6, 30, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     RecordProvisionsRequest
		wantErr bool
		asOf    time.Time
	}{
		{"defaults to now", RecordProvisionsRequest{SessionID: "close-2024"}, false, now},
		{"explicit date", RecordProvisionsRequest{SessionID: "close-2024", AsOf: "2024-12-31"}, false, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"missing session", RecordProvisionsRequest{AsOf: "2024-12-31"}, true, time.Time{}},
		{"bad date", RecordProvisionsRequest{SessionID: "close-2024", AsOf: "31/12/2024"}, true, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrMalformedRecord) {
					t.Fatalf("expected malformed record, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			input, err := tt.req.ToUseCaseInput(now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if input.SessionID != tt.req.SessionID || !input.AsOf.Equal(tt.asOf) {
				t.Fatalf("unexpected input %+v", input)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := ParseDate("", fallback)
	if err != nil || !got.Equal(fallback) {
		t.Fatalf("expected fallback, got %v %v", got, err)
	}

	if _, err := ParseDate("2024-13-01", fallback); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected malformed record, got %v", err)
	}
}
