// Package response provides helpers for sending consistent JSON
// responses and standardized error envelopes.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the structured error envelope returned by the API.
// Details is optional context, usually the underlying error string.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON sends a JSON response with the given status code. When
// data is nil only the status code is written. Encoding errors are
// logged but do not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends a structured error response with the given status
// code and a user-facing message.
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
