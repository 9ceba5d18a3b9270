package lineitems

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the class of all configuration validation failures.
	ErrConfiguration = errors.New("lineitems: invalid configuration")
	// ErrJobNotFound is returned when a job id has no record.
	ErrJobNotFound = errors.New("lineitems: job not found")
)

// FieldError reports a missing or unparseable configuration field. Assembly
// refuses to run on a partially filled configuration; the field name tells
// the form collaborator what to fix.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("lineitems: field %q %s", e.Field, e.Reason)
}

// Unwrap ties FieldError into the ErrConfiguration class.
func (e *FieldError) Unwrap() error { return ErrConfiguration }

func missingField(name string) error {
	return &FieldError{Field: name, Reason: "is required"}
}

func invalidField(name string, v any) error {
	return &FieldError{Field: name, Reason: fmt.Sprintf("has invalid value %v", v)}
}
