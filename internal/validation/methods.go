// Package validation performs request-boundary field validation.
// Failures here reject the single request; they never touch the
// engine or leave partial state behind.
package validation

import (
	"fmt"
	"strings"
)

// Validator accumulates field-level validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid reports whether no validation errors were recorded.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records an error for a field. The first error per field
// wins.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// Positive checks that a number is greater than zero.
func (v *Validator) Positive(field string, value float64) {
	v.Check(value > 0, field, "must be greater than zero")
}

// Range checks that a number is between min and max inclusive.
func (v *Validator) Range(field string, value, min, max float64) {
	v.Check(value >= min && value <= max, field, fmt.Sprintf("must be between %v and %v", min, max))
}

// Latitude checks a latitude in decimal degrees.
func (v *Validator) Latitude(field string, value float64) {
	v.Check(value >= -90 && value <= 90, field, "must be between -90 and 90")
}

// Longitude checks a longitude in decimal degrees.
func (v *Validator) Longitude(field string, value float64) {
	v.Check(value >= -180 && value <= 180, field, "must be between -180 and 180")
}

// OneOf checks that a value is one of the allowed options.
func (v *Validator) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
}
