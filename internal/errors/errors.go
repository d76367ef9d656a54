// Package errors provides the structured error type shared by the phq
// library and CLI, plus did-you-mean suggestion generation for unit and
// category lookups.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// PhQError is a structured error with an optional cause and did-you-mean
// suggestions for user-facing lookups.
type PhQError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Suggestions []string
}

// Error implements the error interface.
func (e *PhQError) Error() string {
	var b strings.Builder
	if e.Code != "" {
		fmt.Fprintf(&b, "[%s] ", e.Code)
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

// Unwrap returns the underlying cause error.
func (e *PhQError) Unwrap() error {
	return e.Cause
}

// Is matches errors by type and code so callers can compare against the
// constructors' results without string inspection.
func (e *PhQError) Is(target error) bool {
	var t *PhQError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// UnknownUnit reports an unrecognized unit spelling. Candidates are the
// recognized spellings used to generate suggestions.
func UnknownUnit(text string, candidates []string) *PhQError {
	return &PhQError{
		Type:        ErrorTypeParse,
		Code:        "UNKNOWN_UNIT",
		Message:     fmt.Sprintf("unknown unit %q", text),
		Suggestions: Suggest(text, candidates, 3),
	}
}

// UnknownCategory reports an unrecognized category name.
func UnknownCategory(text string, candidates []string) *PhQError {
	return &PhQError{
		Type:        ErrorTypeParse,
		Code:        "UNKNOWN_CATEGORY",
		Message:     fmt.Sprintf("unknown unit category %q", text),
		Suggestions: Suggest(text, candidates, 3),
	}
}

// InvalidConfig reports an invalid configuration value.
func InvalidConfig(field string, cause error) *PhQError {
	return &PhQError{
		Type:    ErrorTypeConfig,
		Code:    "INVALID_CONFIG",
		Message: fmt.Sprintf("invalid configuration for %s", field),
		Cause:   cause,
	}
}
