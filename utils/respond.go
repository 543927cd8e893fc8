package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"foodshare/apperrors"
)

// M is a shorthand for building response envelopes.
type M map[string]interface{}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// Error maps a service error to its status code and writes the uniform
// failure envelope. The underlying message is surfaced as-is.
func Error(w http.ResponseWriter, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("Internal error")
	}
	JSON(w, status, M{"success": false, "message": err.Error()})
}
