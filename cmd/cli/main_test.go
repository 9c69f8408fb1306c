package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type captured struct {
	method string
	path   string
	query  string
	body   string
	header http.Header
}

func newAPI(t *testing.T, status int, response string) (*httptest.Server, *captured) {
	t.Helper()

	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		*got = captured{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(raw),
			header: r.Header.Clone(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func execute(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--url", srv.URL))
	err := cmd.Execute()
	return out.String(), err
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintRaw(t *testing.T) {
	var buf bytes.Buffer
	if err := printRaw(&buf, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "{\n  \"a\": 1\n}\n"
	if buf.String() != expected {
		t.Fatalf("unexpected json output:\n%s", buf.String())
	}
}

func TestTaxValidateCmd(t *testing.T) {
	dir := t.TempDir()
	bare := filepath.Join(dir, "bare.json")
	wrapped := filepath.Join(dir, "wrapped.json")
	lines := `[{"account_code":"601","debit":"100"},{"account_code":"401","credit":"100"}]`
	os.WriteFile(bare, []byte(lines), 0o600)
	os.WriteFile(wrapped, []byte(`{"lines":`+lines+`}`), 0o600)

	for _, file := range []string{bare, wrapped} {
		srv, got := newAPI(t, http.StatusOK, `{"is_valid":true,"errors":[],"warnings":[],"suggestions":[]}`)

		out, err := execute(t, srv, "tax", "validate", "--file", file)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.method != http.MethodPost || got.path != "/api/v1/tax/validate" {
			t.Fatalf("unexpected request %s %s", got.method, got.path)
		}

		var body struct {
			Lines []map[string]any `json:"lines"`
		}
		if err := json.Unmarshal([]byte(got.body), &body); err != nil || len(body.Lines) != 2 {
			t.Fatalf("expected two lines in the body, got %s", got.body)
		}
		if !strings.Contains(out, `"is_valid": true`) {
			t.Fatalf("unexpected output %s", out)
		}
	}
}

func TestTaxValidateCmdFailsOnInvalidReport(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lines.json")
	os.WriteFile(file, []byte(`[{"account_code":"4452","credit":"18"}]`), 0o600)

	srv, _ := newAPI(t, http.StatusOK, `{"is_valid":false,"errors":[{"code":"deductible_vat_on_credit"}]}`)

	if _, err := execute(t, srv, "tax", "validate", "--file", file); !errors.Is(err, errInvalidVAT) {
		t.Fatalf("expected errInvalidVAT, got %v", err)
	}
}

func TestTaxValidateCmdRejectsGarbage(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lines.json")
	os.WriteFile(file, []byte(`"not lines"`), 0o600)

	srv, _ := newAPI(t, http.StatusOK, `{}`)
	if _, err := execute(t, srv, "tax", "validate", "--file", file); err == nil {
		t.Fatalf("expected an error for a file without lines")
	}
}

func TestQueryCommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		path  string
		query string
	}{
		{"aging", []string{"aging", "--role", "supplier", "--as-of", "2024-06-30"}, "/api/v1/aging", "as_of=2024-06-30&role=supplier"},
		{"provisions", []string{"provisions", "--as-of", "2024-12-31"}, "/api/v1/provisions", "as_of=2024-12-31"},
		{"provisions compare", []string{"provisions", "compare", "--session", "close-2024"}, "/api/v1/provisions/compare", "session=close-2024"},
		{"depreciation", []string{"depreciation", "--from", "2024-01-01", "--to", "2024-12-31"}, "/api/v1/depreciation", "from=2024-01-01&to=2024-12-31"},
		{"sig", []string{"reports", "sig", "--fiscal-year", "fy-2024", "--prior", "fy-2023"}, "/api/v1/reports/sig", "fiscal_year=fy-2024&prior=fy-2023"},
		{"ratios", []string{"reports", "ratios", "--fiscal-year", "fy-2024"}, "/api/v1/reports/ratios", "fiscal_year=fy-2024"},
		{"treasury", []string{"reports", "treasury", "--from", "2024-01-01", "--to", "2024-03-31"}, "/api/v1/reports/treasury", "from=2024-01-01&to=2024-03-31"},
		{"trial balance", []string{"reports", "trial-balance", "--fiscal-year", "fy-2024"}, "/api/v1/reports/trial-balance", "fiscal_year=fy-2024"},
		{"entry tax", []string{"tax", "entry", "e-1"}, "/api/v1/entries/e-1/tax", ""},
		{"aging one party", []string{"aging", "--third-party", "c-1"}, "/api/v1/aging", "role=customer&third_party=c-1"},
		{"provision records", []string{"provisions", "records", "--session", "close-2024"}, "/api/v1/provisions/records", "session=close-2024"},
		{"fiscal years", []string{"fiscal", "years"}, "/api/v1/fiscal-years", ""},
		{"fiscal periods", []string{"fiscal", "periods", "fy-2024"}, "/api/v1/fiscal-years/fy-2024/periods", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := newAPI(t, http.StatusOK, `{"ok":true}`)

			out, err := execute(t, srv, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.method != http.MethodGet || got.path != tt.path || got.query != tt.query {
				t.Fatalf("unexpected request %s %s?%s", got.method, got.path, got.query)
			}
			if !strings.Contains(out, `"ok": true`) {
				t.Fatalf("unexpected output %s", out)
			}
		})
	}
}

func TestProvisionsRecordCmd(t *testing.T) {
	srv, got := newAPI(t, http.StatusOK, `[]`)

	_, err := execute(t, srv, "provisions", "record", "--session", "close-2024", "--as-of", "2024-12-31", "--idempotency-key", "k-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.method != http.MethodPost || got.path != "/api/v1/provisions/record" {
		t.Fatalf("unexpected request %s %s", got.method, got.path)
	}
	if got.header.Get("Idempotency-Key") != "k-1" {
		t.Fatalf("expected idempotency header")
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(got.body), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["session_id"] != "close-2024" || body["as_of"] != "2024-12-31" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestAPIErrorsAreReported(t *testing.T) {
	srv, _ := newAPI(t, http.StatusNotFound, `{"error":"not_found","message":"fiscal year not found"}`)

	_, err := execute(t, srv, "reports", "sig", "--fiscal-year", "fy-1999")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "not_found (status 404): fiscal year not found") {
		t.Fatalf("unexpected error %v", err)
	}
}
