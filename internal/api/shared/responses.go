package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/praffulbansal123/Project2-Books-Management/internal/platform/logger"
)

// ErrorResponse is the error envelope every failure shares:
// {status: <http code>, message: <string>}.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
}

// SuccessResponse is the success envelope: {status: true, message, data}.
type SuccessResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes the standard success envelope.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, SuccessResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// RespondWithError writes a JSON error envelope with the given status code
// and message. It also sets the TraceID from the request context if available.
// Logging goes through the request-scoped logger, which already carries the
// trace id when the trace middleware ran.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{
		Status:  status,
		Message: message,
		TraceID: traceID,
	})
}

// RespondWithValidationErrors writes the 422 envelope carrying per-field
// diagnostic messages, keeping schema rejections distinguishable from
// generic bad requests.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	RespondWithJSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{
		Status:  http.StatusUnprocessableEntity,
		Message: "validation failed",
		Errors:  fields,
		TraceID: GetTraceID(r.Context()),
	})
}
