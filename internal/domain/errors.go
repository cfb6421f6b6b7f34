package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error message string constants - single source of truth for error messages.
// The client string-matches ErrMsgDuplicateKey on "already exists".
const (
	ErrMsgValidation   = "validation failed"
	ErrMsgDuplicateKey = "Item with same serial number and type already exists"
	ErrMsgNotFound     = "Item not found"
	ErrMsgMalformedID  = "Invalid ID format"
	ErrMsgInternal     = "Internal server error"
)

// Domain errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// for additional context and match with errors.Is.
var (
	ErrValidation   = errors.New(ErrMsgValidation)
	ErrDuplicateKey = errors.New(ErrMsgDuplicateKey)
	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrMalformedID  = errors.New(ErrMsgMalformedID)
	ErrInternal     = errors.New(ErrMsgInternal)
)

// ValidationError lists the rejected fields of a payload, keyed by JSON name.
type ValidationError struct {
	Entity string
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError for entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{Entity: entity, Fields: make(map[string]string)}
}

// Add records a problem with field.
func (e *ValidationError) Add(field, problem string) {
	e.Fields[field] = problem
}

// Error renders "<Entity> validation failed: a: ..., b: ..." with fields sorted.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s %s: %s", e.Entity, ErrMsgValidation, strings.Join(parts, ", "))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
