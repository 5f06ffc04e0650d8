package middleware

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Error codes written by middleware. They share the {"error","code"} body of
// the REST handlers.
const (
	CodeInternal        = "INTERNAL"
	CodeRateLimited     = "RATE_LIMITED"
	CodeUnauthenticated = "UNAUTHENTICATED"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message, Code: code}) //nolint:errcheck
}
