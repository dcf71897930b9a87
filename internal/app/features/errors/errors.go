// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs logging with JSON error responses so handlers never
// leak internal detail to clients. Storage failures and bugs are logged
// with full context and surfaced as a generic message; clients cannot tell
// the two apart.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger with the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// messageResponse is the JSON body for non-validation errors.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse reports per-field validation failures.
type validationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// LogServerError logs an internal failure and responds 500 with the given
// user-facing message. The underlying error never reaches the client.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.Log.Error(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: userMsg})
}

// NotFound responds 404 with the given message.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, messageResponse{Message: msg})
}

// BadRequest responds 400 with the given message and no field detail.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, messageResponse{Message: msg})
}

// ValidationFailed responds 400 with a per-field error report. Field keys
// are the JSON names of the offending request fields.
func (e *ErrorLogger) ValidationFailed(w http.ResponseWriter, msg string, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, validationResponse{Message: msg, Errors: fields})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
