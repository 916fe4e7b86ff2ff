// Package apierr defines the wire-level error taxonomy for the API. Every
// failure leaves the server as one of these codes plus a short human-readable
// message; nothing is retried internally.
package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	CodeBadRequest   = "bad_request"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeServerError  = "server_error"
)

// Error is a JSON-serializable API error. It implements the error interface
// so handlers can both return and write it.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes the error as a JSON response.
func (e *Error) WriteError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// WithMessage returns a copy of the error carrying a different message,
// keeping the status and code.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{StatusCode: e.StatusCode, Code: e.Code, Message: msg}
}

var (
	// ErrBadRequest covers missing or empty required fields and malformed
	// identifiers.
	ErrBadRequest = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       CodeBadRequest,
		Message:    "the request is malformed or missing required fields",
	}

	// ErrUnauthorized covers missing/invalid/expired tokens and bad
	// credentials. The message stays generic to avoid user enumeration.
	ErrUnauthorized = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeUnauthorized,
		Message:    "invalid credentials",
	}

	// ErrForbidden means authenticated but not the resource owner.
	ErrForbidden = &Error{
		StatusCode: http.StatusForbidden,
		Code:       CodeForbidden,
		Message:    "you do not own this resource",
	}

	// ErrNotFound means the referenced user, post or notification is absent.
	ErrNotFound = &Error{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		Message:    "resource not found",
	}

	// ErrConflict is returned for duplicate usernames or emails.
	ErrConflict = &Error{
		StatusCode: http.StatusConflict,
		Code:       CodeConflict,
		Message:    "resource already exists",
	}

	// ErrServerError covers store or unexpected failures.
	ErrServerError = &Error{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeServerError,
		Message:    "internal server error",
	}
)
