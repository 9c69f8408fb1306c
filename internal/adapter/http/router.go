package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/ohadacore/internal/adapter/http/handler"
	"github.com/iho/ohadacore/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	Logger              zerolog.Logger
	TaxHandler          *handler.TaxHandler
	AgingHandler        *handler.AgingHandler
	ProvisionHandler    *handler.ProvisionHandler
	FiscalHandler       *handler.FiscalHandler
	DepreciationHandler *handler.DepreciationHandler
	ReportHandler       *handler.ReportHandler
	HealthHandler       *handler.HealthHandler
	IdempotencyStore    middleware.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/tax/validate", cfg.TaxHandler.Validate)
		r.Get("/entries/{id}/tax", cfg.TaxHandler.ValidateEntry)

		r.Get("/aging", cfg.AgingHandler.Analyze)

		// Idempotency middleware for mutating requests
		record := http.Handler(http.HandlerFunc(cfg.ProvisionHandler.Record))
		if cfg.IdempotencyStore != nil {
			record = middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).Wrap(record)
		}
		r.Get("/provisions", cfg.ProvisionHandler.Calculate)
		r.Get("/provisions/compare", cfg.ProvisionHandler.Compare)
		r.Get("/provisions/records", cfg.ProvisionHandler.Recorded)
		r.Method(http.MethodPost, "/provisions/record", record)

		r.Get("/depreciation", cfg.DepreciationHandler.Reconcile)

		r.Get("/fiscal-years", cfg.FiscalHandler.Years)
		r.Get("/fiscal-years/{id}/periods", cfg.FiscalHandler.Periods)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/treasury", cfg.ReportHandler.Treasury)
			r.Get("/sig", cfg.ReportHandler.SIG)
			r.Get("/ratios", cfg.ReportHandler.Ratios)
			r.Get("/trial-balance", cfg.ReportHandler.TrialBalance)
		})
	})

	return r
}
