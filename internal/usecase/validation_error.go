package usecase

import (
	"sort"
	"strings"

	domainerrors "portal/internal/domain/errors"
)

// ValidationError reports invalid form fields. It is raised before any network call.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for the given field messages.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) HTTPCode() int {
	return domainerrors.ErrValidationFailed.HTTPCode()
}

func (e *ValidationError) ErrorCode() string {
	return domainerrors.ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return domainerrors.ErrValidationFailed.Message()
}

func (e *ValidationError) Details() string {
	return ""
}

// FieldMessages returns the per-field messages.
func (e *ValidationError) FieldMessages() map[string]string {
	return e.Fields
}

// Is makes every ValidationError match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == domainerrors.ErrValidationFailed
}
