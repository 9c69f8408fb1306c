package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/ohadacore/internal/adapter/http/dto"
)

// TaxHandler handles VAT validation requests.
type TaxHandler struct {
	service TaxService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(service TaxService) *TaxHandler {
	return &TaxHandler{service: service}
}

// Validate handles POST /tax/validate.
func (h *TaxHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateTaxRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	report, err := h.service.ValidateLines(r.Context(), req.Lines)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// ValidateEntry handles GET /entries/{id}/tax.
func (h *TaxHandler) ValidateEntry(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ValidateEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
