// Package httpx holds the small JSON response helpers shared by every handler.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body: a token-style message plus
// optional structured details (e.g. field violations on validation errors).
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(payload)
	if err != nil {
		// marshal happens before the header is written, so we can still
		// emit a clean error response instead of partial JSON
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		_ = err // client went away; nothing useful to do
	}
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}
