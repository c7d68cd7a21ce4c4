package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrAIUnavailable  = errors.New("ai unavailable")
	ErrPartialCapture = errors.New("partial capture")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// AIError is returned by the AI gateway for any failed call.
// Malformed distinguishes a response that failed shape validation from a
// provider/transport failure; both match ErrAIUnavailable via errors.Is.
type AIError struct {
	Op        string
	Malformed bool
	Err       error
}

func (e *AIError) Error() string {
	kind := "provider error"
	if e.Malformed {
		kind = "malformed response"
	}
	return fmt.Sprintf("ai %s: %s: %v", e.Op, kind, e.Err)
}

func (e *AIError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAIUnavailable}
	}
	return []error{ErrAIUnavailable, e.Err}
}

// NewAIProviderError wraps a transport or provider failure of the AI gateway.
func NewAIProviderError(op string, err error) *AIError {
	return &AIError{Op: op, Err: err}
}

// NewAIMalformedError marks an AI response that failed shape validation.
func NewAIMalformedError(op string, err error) *AIError {
	return &AIError{Op: op, Malformed: true, Err: err}
}

// CaptureStepError records the failure of one dependent capture step.
type CaptureStepError struct {
	Step string
	Err  error
}

// PartialCaptureError reports a capture where the entry was persisted but one
// or more dependent writes failed. The entry id is always set so callers can
// retry just the missing piece.
type PartialCaptureError struct {
	EntryID uuid.UUID
	Steps   []CaptureStepError
}

func (e *PartialCaptureError) Error() string {
	steps := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		steps[i] = s.Step
	}
	return fmt.Sprintf("capture: entry %s persisted, failed steps: %s", e.EntryID, strings.Join(steps, ", "))
}

func (e *PartialCaptureError) Unwrap() error { return ErrPartialCapture }
