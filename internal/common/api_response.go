package common

import (
	"encoding/json"
	"net/http"

	"infinite-experiment/airport-lookup/internal/logging"
	"infinite-experiment/airport-lookup/internal/models/dtos/responses"
)

// RespondJSON writes body as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "status_code", code, "error", err.Error())
	}
}

// RespondError writes {"error": message}.
func RespondError(w http.ResponseWriter, code int, message string) {
	RespondJSON(w, code, responses.ErrorResponse{Error: message})
}
