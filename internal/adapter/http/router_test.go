package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/ohadacore/internal/adapter/http/handler"
	apimiddleware "github.com/iho/ohadacore/internal/adapter/http/middleware"
	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/tax"
	"github.com/iho/ohadacore/internal/usecase"
	"github.com/iho/ohadacore/internal/usecase/mocks"
)

type repos struct {
	entries    *mocks.MockEntryRepository
	parties    *mocks.MockThirdPartyRepository
	assets     *mocks.MockAssetRepository
	provisions *mocks.MockProvisionRepository
	fiscal     *mocks.MockFiscalRepository
}

func newRouterConfig(t *testing.T, opts ...func(*RouterConfig)) (RouterConfig, repos) {
	t.Helper()

	ctrl := gomock.NewController(t)
	r := repos{
		entries:    mocks.NewMockEntryRepository(ctrl),
		parties:    mocks.NewMockThirdPartyRepository(ctrl),
		assets:     mocks.NewMockAssetRepository(ctrl),
		provisions: mocks.NewMockProvisionRepository(ctrl),
		fiscal:     mocks.NewMockFiscalRepository(ctrl),
	}

	plan := chart.Default()
	agingUC := usecase.NewAgingUseCase(r.entries, r.parties, plan, usecase.Options{}, nil)
	ping := func(ctx context.Context) error { return nil }

	cfg := RouterConfig{
		Logger:              zerolog.Nop(),
		TaxHandler:          handler.NewTaxHandler(usecase.NewTaxUseCase(r.entries, tax.DefaultRules(), nil)),
		AgingHandler:        handler.NewAgingHandler(agingUC),
		ProvisionHandler:    handler.NewProvisionHandler(usecase.NewProvisionUseCase(agingUC, r.provisions, nil, mocks.NewMockIDGenerator(ctrl), nil)),
		FiscalHandler:       handler.NewFiscalHandler(usecase.NewFiscalUseCase(r.fiscal)),
		DepreciationHandler: handler.NewDepreciationHandler(usecase.NewDepreciationUseCase(r.entries, r.assets, r.fiscal, plan, usecase.Options{}, nil)),
		ReportHandler:       handler.NewReportHandler(usecase.NewReportingUseCase(r.entries, r.fiscal, nil, 0, plan, usecase.Options{}, nil)),
		HealthHandler:       handler.NewHealthHandler(ping, nil),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, r
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	cfg, _ := newRouterConfig(t)
	router := NewRouter(cfg)

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected %s to return 200, got %d", path, rec.Code)
		}
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	cfg, _ := newRouterConfig(t)
	router := NewRouter(cfg)

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/tax/validate",
		"GET /api/v1/entries/{id}/tax",
		"GET /api/v1/aging",
		"GET /api/v1/provisions",
		"GET /api/v1/provisions/compare",
		"POST /api/v1/provisions/record",
		"GET /api/v1/provisions/records",
		"GET /api/v1/fiscal-years",
		"GET /api/v1/fiscal-years/{id}/periods",
		"GET /api/v1/depreciation",
		"GET /api/v1/reports/treasury",
		"GET /api/v1/reports/sig",
		"GET /api/v1/reports/ratios",
		"GET /api/v1/reports/trial-balance",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func TestNewRouter_ValidatesStoredEntry(t *testing.T) {
	cfg, r := newRouterConfig(t)
	router := NewRouter(cfg)

	r.entries.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrEntryNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/entries/missing/tax", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_ReportRequiresPeriod(t *testing.T) {
	cfg, _ := newRouterConfig(t)
	router := NewRouter(cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/treasury", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_IdempotencyMiddlewareGuardsRecord(t *testing.T) {
	store := &stubIdempotencyStore{}
	cfg, r := newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	})
	router := NewRouter(cfg)

	r.entries.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	r.parties.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	r.provisions.EXPECT().GetBySession(gomock.Any(), "close-2024").Return(nil, nil)

	body := `{"session_id":"close-2024","as_of":"2024-12-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/provisions/record", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !store.claimed || !store.completed {
		t.Fatalf("expected idempotency store to be used, got %+v", store)
	}
}

type stubIdempotencyStore struct {
	claimed   bool
	completed bool
}

func (s *stubIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, []byte, error) {
	s.claimed = true
	return true, nil, nil
}

func (s *stubIdempotencyStore) Complete(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.completed = true
	return nil
}

func (s *stubIdempotencyStore) Release(ctx context.Context, key string) error {
	return nil
}
