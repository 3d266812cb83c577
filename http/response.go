package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sagarc03/foodle"
)

const contentTypeJSON = "application/json"

// ErrorResponse is the body of every error reply. RequestID echoes the
// X-Request-ID of the failed request so clients can quote it.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type apiError struct {
	target  error
	status  int
	code    string
	message string
}

// apiErrors maps sentinel errors to replies, first match wins.
var apiErrors = []apiError{
	{ErrUnavailable, http.StatusServiceUnavailable, "unavailable", "Service unavailable"},
	{foodle.ErrInvalidInput, http.StatusBadRequest, "invalid_input", "Invalid input"},
}

var internalError = apiError{status: http.StatusInternalServerError, code: "internal_error", message: "Internal server error"}

func lookupAPIError(err error) apiError {
	for _, e := range apiErrors {
		if errors.Is(err, e.target) {
			return e
		}
	}
	return internalError
}

// WriteError replies with an ErrorResponse. r may be nil.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	body := ErrorResponse{Error: code, Message: message}
	if r != nil {
		body.RequestID = RequestIDFromContext(r.Context())
	}

	if err := WriteJSON(w, status, body); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError logs err and replies with the status its sentinel maps to.
// The error text itself is never sent to the client.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	e := lookupAPIError(err)

	attrs := []any{"error", err, "status", e.status}
	if r != nil {
		attrs = append(attrs, "request_id", RequestIDFromContext(r.Context()))
	}
	if e.status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
	} else {
		slog.Warn("request rejected", attrs...)
	}

	WriteError(w, r, e.status, e.code, e.message)
}

// WriteJSON encodes data as the reply body with status code.
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}
