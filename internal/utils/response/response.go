// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here — along with
// the single place where storage/validation errors are mapped to HTTP
// status codes.
//
// Consistent response shapes also make life easier for API consumers —
// they always know what error responses look like.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kashsosa-888/cloud-computing-project/internal/storage"
)

// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a record, a list…).
// Error responses always look like:
//
//	{ "status": "error", "error": "field Name is required" }
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

// Status string constants — use these instead of raw string literals so
// a typo is caught by the compiler rather than silently sending "eroor".
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable Response.
//
// go-playground/validator returns one FieldError per failing struct
// field — it does NOT stop at the first failure, so the client sees
// every problem at once. We convert each to a plain English sentence
// and join them with ", ".
//
// Example output:
//
//	{ "status": "error", "error": "field CourseCode must be a valid course code, field Year is out of range" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of: %s", e.Field(), e.Param()))
		case "gte", "lte", "min", "max":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is out of range", e.Field()))
		case "course_code":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid course code (e.g. COMS4111)", e.Field()))
		case "department_code":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid department code (e.g. COMS)", e.Field()))
		case "uni":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid UNI (e.g. abc1234)", e.Field()))
		case "credits":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must have at most one decimal place", e.Field()))
		case "datetime":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a date in YYYY-MM-DD format", e.Field()))
		case "http_url":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid http(s) URL", e.Field()))
		// Catch-all for any other validation tag
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}

// WriteError maps an error from the storage/validation layers to the
// right HTTP status and writes the envelope:
//
//	storage.NotFoundError          → 404
//	storage.ConflictError          → 400
//	validator.ValidationErrors     → 400, field-by-field detail
//	anything else                  → 500
func WriteError(w http.ResponseWriter, err error) error {
	var (
		notFound     storage.NotFoundError
		conflict     storage.ConflictError
		validateErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &notFound):
		return WriteJSON(w, http.StatusNotFound, GeneralError(err))
	case errors.As(err, &conflict):
		return WriteJSON(w, http.StatusBadRequest, GeneralError(err))
	case errors.As(err, &validateErrs):
		return WriteJSON(w, http.StatusBadRequest, ValidationError(validateErrs))
	default:
		return WriteJSON(w, http.StatusInternalServerError, GeneralError(err))
	}
}
