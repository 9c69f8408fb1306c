package handler

import (
	"net/http"

	"github.com/iho/ohadacore/internal/usecase"
)

// ReportHandler handles balance-based report requests.
type ReportHandler struct {
	service ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Treasury handles GET /reports/treasury.
func (h *ReportHandler) Treasury(w http.ResponseWriter, r *http.Request) {
	input, err := periodQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	pos, err := h.service.Treasury(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pos)
}

// TrialBalance handles GET /reports/trial-balance.
func (h *ReportHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	input, err := periodQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	tb, err := h.service.TrialBalance(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tb)
}

// SIG handles GET /reports/sig?fiscal_year=&prior=.
func (h *ReportHandler) SIG(w http.ResponseWriter, r *http.Request) {
	input, err := periodQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	report, err := h.service.SIG(r.Context(), usecase.SIGInput{
		PeriodInput: input,
		PriorYearID: r.URL.Query().Get("prior"),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Ratios handles GET /reports/ratios.
func (h *ReportHandler) Ratios(w http.ResponseWriter, r *http.Request) {
	input, err := periodQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	ratios, err := h.service.Ratios(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ratios)
}
