package apperrors

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidField = "INVALID_FIELD"
	CodeStoreFailure = "STORE_FAILURE"
)

// Error is a structured application error carrying a machine-readable code
// and enough detail to render a precise client-facing message.
type Error struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`

	// cause is the wrapped lower-level error, kept out of the response body.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// StatusCode maps the error code to its HTTP status.
func (e *Error) StatusCode() int {
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeValidation, CodeInvalidField:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// NotFound reports that a referenced entity or edge does not exist.
func NotFound(resource string, id interface{}) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Details: map[string]interface{}{"resource": resource, "id": fmt.Sprint(id)},
	}
}

// Conflict reports a uniqueness or state-consistency violation.
func Conflict(message string, details map[string]interface{}) *Error {
	return &Error{
		Code:    CodeConflict,
		Message: message,
		Details: details,
	}
}

// Validation reports semantically invalid input not covered by NotFound or
// Conflict.
func Validation(message, field string, value interface{}) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: message,
		Details: map[string]interface{}{"field": field, "value": fmt.Sprint(value)},
	}
}

// InvalidField reports ordering or filtering against a non-whitelisted field.
func InvalidField(field, operation string, validFields []string) *Error {
	return &Error{
		Code:    CodeInvalidField,
		Message: fmt.Sprintf("field %q is not allowed for %s", field, operation),
		Details: map[string]interface{}{
			"field":        field,
			"operation":    operation,
			"valid_fields": validFields,
		},
	}
}

// StoreFailure wraps an unclassified persistence error. The caller sees an
// opaque message with a correlation id; the underlying error stays wrapped
// for logging.
func StoreFailure(err error) *Error {
	return &Error{
		Code:    CodeStoreFailure,
		Message: "storage operation failed",
		Details: map[string]interface{}{"correlation_id": correlationID()},
		cause:   err,
	}
}

func correlationID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b)
}
