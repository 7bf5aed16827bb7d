// Package server provides the HTTP API of the resume matcher.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedBody indicates the request body is not valid JSON
type ErrMalformedBody struct {
	Cause error
}

func (e *ErrMalformedBody) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Cause)
}

func (e *ErrMalformedBody) Unwrap() error {
	return e.Cause
}

// ErrBodyTooLarge indicates the request body exceeds the configured limit
type ErrBodyTooLarge struct {
	Limit int64
}

func (e *ErrBodyTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// FieldError describes one invalid request field. Loc is the path to the field,
// starting with "body".
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Fields []FieldError
}

func (e *ErrValidation) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", formatLoc(f.Loc), f.Msg))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var malformed *ErrMalformedBody
	var tooLarge *ErrBodyTooLarge
	var invalid *ErrValidation

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// newValidationError converts validator errors into field errors. Any other
// error becomes a single error located at the body itself.
func newValidationError(err error) *ErrValidation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ErrValidation{Fields: []FieldError{{
			Loc:  []any{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Loc:  namespaceLoc(fe.Namespace()),
			Msg:  fieldMessage(fe),
			Type: fieldErrorType(fe),
		})
	}
	return &ErrValidation{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	unit := "characters"
	if k := fe.Kind().String(); k == "slice" || k == "array" || k == "map" {
		unit = "items"
	}

	switch fe.Tag() {
	case "required":
		return "field required"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s %s", fe.Param(), unit)
	case "min":
		return fmt.Sprintf("ensure this value has at least %s %s", fe.Param(), unit)
	case "unique_ids":
		return "candidate ids must be unique"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func fieldErrorType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value_error.missing"
	case "max":
		return "value_error.any_str.max_length"
	case "min":
		return "value_error.list.min_items"
	case "unique_ids":
		return "value_error.list.unique_items"
	default:
		return "value_error"
	}
}

// namespaceLoc turns "RankRequest.candidates[0].resume_text" into
// ["body", "candidates", 0, "resume_text"].
func namespaceLoc(namespace string) []any {
	loc := []any{"body"}

	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for _, part := range parts {
		name, rest, indexed := strings.Cut(part, "[")
		if name != "" {
			loc = append(loc, name)
		}
		for indexed {
			var idx string
			idx, rest, _ = strings.Cut(rest, "]")
			if n, err := strconv.Atoi(idx); err == nil {
				loc = append(loc, n)
			} else {
				loc = append(loc, idx)
			}
			_, rest, indexed = strings.Cut(rest, "[")
		}
	}
	return loc
}

func formatLoc(loc []any) string {
	parts := make([]string, 0, len(loc))
	for _, l := range loc {
		parts = append(parts, fmt.Sprint(l))
	}
	return strings.Join(parts, ".")
}
