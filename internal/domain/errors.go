package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when an entity looked up by id or name does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated is returned when an action needs a logged-in user.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the logged-in user may not act on the entity.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries per-field messages for malformed form input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// OrNil returns nil when no field errors were added, so callers can
// return the result directly.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// NewFieldError builds a ValidationError with a single field message.
func NewFieldError(field, message string) *ValidationError {
	verr := &ValidationError{}
	verr.Add(field, message)
	return verr
}
