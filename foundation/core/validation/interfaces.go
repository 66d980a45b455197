// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the Validator interface, structured validation results
//              and the reason codes shared by all toolkit validators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-17 v0.2.0: Reason codes for file and enum checks, ReasonCode/Message helpers

package validation

import (
	"context"
	"fmt"
	"strings"

	ztkerror "github.com/msto63/ztk/foundation/core/error"
)

// Reason codes reported in ValidationError.Code
const (
	CodeRequired     = "VALIDATION_REQUIRED"
	CodeFormat       = "VALIDATION_FORMAT"
	CodeType         = "VALIDATION_TYPE"
	CodePattern      = "VALIDATION_PATTERN"
	CodeCustom       = "VALIDATION_CUSTOM"
	CodeInvalidValue = "VALIDATION_INVALID_VALUE"

	CodeEmail       = "VALIDATION_EMAIL"
	CodeEmailDomain = "VALIDATION_EMAIL_DOMAIN"
	CodePhoneNumber = "VALIDATION_PHONE"

	CodeFileSize = "VALIDATION_FILE_SIZE"
	CodeFileType = "VALIDATION_FILE_TYPE"
)

// Validator defines the interface for all validation functions
type Validator interface {
	Validate(value interface{}) ValidationResult
	ValidateWithContext(ctx context.Context, value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidateWithContext implements Validator. A cancelled context yields a
// failed result without running f.
func (f ValidatorFunc) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return NewValidationError(CodeCustom, "validation cancelled: "+err.Error())
		}
	}
	return f(value)
}

// ValidationResult represents the result of a validation operation.
// An expected-invalid input is reported here, never as a Go error.
type ValidationResult struct {
	Valid   bool                   `json:"valid"`
	Errors  []ValidationError      `json:"errors,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ValidationError represents a single validation failure
type ValidationError struct {
	Code     string                 `json:"code"`
	Field    string                 `json:"field,omitempty"`
	Message  string                 `json:"message"`
	Value    interface{}            `json:"value,omitempty"`
	Context  map[string]interface{} `json:"context,omitempty"`
	Expected interface{}            `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// NewValidationErrorWithField creates a validation error for a specific field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Errors: []ValidationError{{Code: code, Field: field, Message: message, Value: value}},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message})
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Field: field, Message: message, Value: value})
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ReasonCode returns the code of the first error, or "" for a valid result
func (r ValidationResult) ReasonCode() string {
	if e := r.FirstError(); e != nil {
		return e.Code
	}
	return ""
}

// Message returns the message of the first error, or "" for a valid result
func (r ValidationResult) Message() string {
	if e := r.FirstError(); e != nil {
		return e.Message
	}
	return ""
}

// ErrorMessages returns all error messages
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a toolkit error, nil if valid.
// Use it at boundaries that can only transport errors, such as the CLI.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return ztkerror.New("validation failed").WithCode(ztkerror.CodeValidationFailed)
	}

	first := r.Errors[0]
	err := ztkerror.New(first.Message).
		WithCode(ztkerror.CodeValidationFailed).
		WithDetail("reason", first.Code)
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	for key, value := range first.Context {
		err = err.WithDetail(key, value)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false"}
	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		parts = append(parts, fmt.Sprintf("first: %s", r.Errors[0].Message))
	}
	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}
	return combined
}
