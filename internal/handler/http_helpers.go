package handler

import (
	"encoding/json"
	"net/http"

	"pdf-text-extractor/internal/domain"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// GetRequestIDFromContext returns the ID assigned by the request logging middleware
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, domain.ErrorResponse{
		Error:  message,
		Status: domain.StatusError,
	})
}
