package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// FiscalHandler handles fiscal year lookups.
type FiscalHandler struct {
	service FiscalService
}

// NewFiscalHandler creates a new FiscalHandler.
func NewFiscalHandler(service FiscalService) *FiscalHandler {
	return &FiscalHandler{service: service}
}

// Years handles GET /fiscal-years.
func (h *FiscalHandler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.service.Years(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, years)
}

// Periods handles GET /fiscal-years/{id}/periods.
func (h *FiscalHandler) Periods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.service.Periods(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, periods)
}
