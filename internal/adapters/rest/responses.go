package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
	"github.com/ameerhamza-malik/ItemManagement/internal/validation"

	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors validation.Errors `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps domain failures onto HTTP responses. Validation
// failures surface as a structured field/message list; everything
// unexpected collapses into a generic 500 that discloses no internal
// detail (no query text, no stack traces).
func writeServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: verrs})
		return
	}

	switch {
	case errors.Is(err, shared.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, shared.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, shared.ErrInvalidCredentials.Error())
	case errors.Is(err, shared.ErrDuplicateIdentity):
		writeError(w, http.StatusConflict, shared.ErrDuplicateIdentity.Error())
	case errors.Is(err, shared.ErrSessionNotFound), errors.Is(err, shared.ErrSessionExpired):
		writeError(w, http.StatusUnauthorized, "authentication required")
	default:
		logger.Error().Err(err).Msg("Request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
