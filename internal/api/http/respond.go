package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// respondError translates the service error taxonomy onto HTTP statuses:
// invalid input 400, action outside its allowed state 409, missing entity
// 404, bad or expired acceptance link 410, collaborator outage 502.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var preconditionErr *domain.PreconditionError
	var collaboratorErr *domain.CollaboratorError

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.As(err, &preconditionErr):
		respondJSON(w, http.StatusConflict, errorResponse{Error: preconditionErr.Error()})
	case errors.Is(err, domain.ErrInvalidToken):
		respondJSON(w, http.StatusGone, errorResponse{Error: domain.ErrInvalidToken.Error()})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.As(err, &collaboratorErr):
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: collaboratorErr.Error()})
	default:
		logger.Error("internal error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}
