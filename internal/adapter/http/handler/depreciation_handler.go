package handler

import "net/http"

// DepreciationHandler handles depreciation reconciliation requests.
type DepreciationHandler struct {
	service DepreciationService
}

// NewDepreciationHandler creates a new DepreciationHandler.
func NewDepreciationHandler(service DepreciationService) *DepreciationHandler {
	return &DepreciationHandler{service: service}
}

// Reconcile handles GET /depreciation?from=&to= or ?fiscal_year=.
func (h *DepreciationHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	input, err := periodQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	summary, err := h.service.Reconcile(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
