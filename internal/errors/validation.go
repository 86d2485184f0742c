package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field-level validation errors and
// produces a single InvalidArgument error, or nil when everything passed.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make(map[string][]string),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for field := range vb.fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", ")))
	}

	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; "))
}
