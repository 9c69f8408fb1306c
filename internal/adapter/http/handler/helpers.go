package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ohadacore/internal/adapter/http/dto"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
	"github.com/iho/ohadacore/internal/usecase"
)

// maxBodyBytes bounds request bodies; a validation request holds at most
// domain.MaxLinesPerEntry lines.
const maxBodyBytes = 8 << 20

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedRecord),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, money.ErrDivisionByZero):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRepositoryUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorCode names a status in error bodies.
func errorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusServiceUnavailable:
		return "repository_unavailable"
	default:
		return "internal_error"
	}
}

// respondError maps err and writes it. Internal errors are logged and their
// details withheld.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapDomainError(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, status, errorCode(status), "internal server error")
		return
	}
	writeError(w, status, errorCode(status), err.Error())
}

// decodeBody decodes a JSON body, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, errorCode(http.StatusBadRequest), "invalid request body: "+err.Error())
		return false
	}
	return true
}

// asOfQuery reads the as_of query parameter, defaulting to today.
func asOfQuery(r *http.Request) (time.Time, error) {
	return dto.ParseDate(r.URL.Query().Get("as_of"), time.Now().UTC())
}

// periodQuery reads fiscal_year, from and to. Missing bounds stay zero and
// are rejected by the use case unless a fiscal year is given.
func periodQuery(r *http.Request) (usecase.PeriodInput, error) {
	q := r.URL.Query()

	from, err := dto.ParseDate(q.Get("from"), time.Time{})
	if err != nil {
		return usecase.PeriodInput{}, err
	}
	to, err := dto.ParseDate(q.Get("to"), time.Time{})
	if err != nil {
		return usecase.PeriodInput{}, err
	}

	return usecase.PeriodInput{
		FiscalYearID: q.Get("fiscal_year"),
		From:         from,
		To:           to,
	}, nil
}
