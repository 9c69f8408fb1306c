package handler

import (
	"net/http"
	"time"

	"github.com/iho/ohadacore/internal/adapter/http/dto"
	"github.com/iho/ohadacore/internal/usecase"
)

// ProvisionHandler handles doubtful-debt provision requests.
type ProvisionHandler struct {
	service ProvisionService
}

// NewProvisionHandler creates a new ProvisionHandler.
func NewProvisionHandler(service ProvisionService) *ProvisionHandler {
	return &ProvisionHandler{service: service}
}

// Calculate handles GET /provisions?as_of=.
func (h *ProvisionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	summary, err := h.service.Calculate(r.Context(), asOf)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Compare handles GET /provisions/compare?session=&as_of=.
func (h *ProvisionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	cmp, err := h.service.Compare(r.Context(), usecase.CompareInput{
		SessionID: r.URL.Query().Get("session"),
		AsOf:      asOf,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cmp)
}

// Recorded handles GET /provisions/records?session=.
func (h *ProvisionHandler) Recorded(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Recorded(r.Context(), r.URL.Query().Get("session"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// Record handles POST /provisions/record.
func (h *ProvisionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordProvisionsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	input, err := req.ToUseCaseInput(time.Now().UTC())
	if err != nil {
		respondError(w, r, err)
		return
	}

	records, err := h.service.Record(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}
