package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/pkg/logger"
)

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps a domain error to its HTTP status. Anything
// untyped is an infrastructure failure: it is logged and hidden behind a
// generic 500.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.NotFoundError
	var badRequest *domain.BadRequestError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &badRequest):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &conflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusForbidden, err.Error())
	default:
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Unexpected error handling request")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID extracts a numeric path variable
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, domain.BadRequest("invalid " + name)
	}
	return uint(id), nil
}
