package handler

import (
	"net/http"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/usecase"
)

// AgingHandler handles balance aging requests.
type AgingHandler struct {
	service AgingService
}

// NewAgingHandler creates a new AgingHandler.
func NewAgingHandler(service AgingService) *AgingHandler {
	return &AgingHandler{service: service}
}

// Analyze handles GET /aging?role=&as_of=&third_party=. The role defaults to customer.
func (h *AgingHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	role := domain.Role(r.URL.Query().Get("role"))
	if role == "" {
		role = domain.RoleCustomer
	}

	result, err := h.service.Analyze(r.Context(), usecase.AgingInput{
		Role:         role,
		AsOf:         asOf,
		ThirdPartyID: r.URL.Query().Get("third_party"),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
