// File: errors.go
// Title: Shared Error Construction Utilities
// Description: Fluent error builder and the standard constructors used by all
//              toolkit modules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-17 v0.2.0: Merged standards and utils, added taxonomy constructors

package errors

import (
	stderrors "errors"
	"fmt"

	ztkerror "github.com/msto63/ztk/foundation/core/error"
)

// Module identifiers for error attribution
const (
	ModuleConfig      = "config"
	ModuleOptions     = "options"
	ModuleStringx     = "stringx"
	ModuleMathx       = "mathx"
	ModuleTimex       = "timex"
	ModuleFilex       = "filex"
	ModuleValidationx = "validationx"
	ModuleI18n        = "i18n"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *ztkerror.Severity
	code      ztkerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    ztkerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity ztkerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code ztkerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *ztkerror.Error {
	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *ztkerror.Error
	if eb.cause != nil {
		err = ztkerror.Wrap(eb.cause, message)
	} else {
		err = ztkerror.New(message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

// InvalidSpec reports self-contradictory options. It always indicates a bug
// at the call site.
func InvalidSpec(module, operation, field string, value interface{}, reason string) *ztkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid option %s: %s", module, operation, field, reason).
		Code(ztkerror.CodeInvalidSpec).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// InvalidSpecCause is InvalidSpec with an underlying cause, such as a regex
// compile error.
func InvalidSpecCause(module, operation, field string, value interface{}, cause error) *ztkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid option %s", module, operation, field).
		Cause(cause).
		Code(ztkerror.CodeInvalidSpec).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// ValidationFailed creates a standardized validation error for callers that
// need an error value instead of a validation result
func ValidationFailed(module, field string, value interface{}, reason string) *ztkerror.Error {
	return NewErrorBuilder(module).
		Messagef("%s: validation failed for %s: %s", module, field, reason).
		Code(ztkerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// PlatformUnavailable reports a failing or missing collaborator
func PlatformUnavailable(module, operation, collaborator string, cause error) *ztkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s unavailable", module, operation, collaborator).
		Cause(cause).
		Code(ztkerror.CodePlatformUnavailable).
		Detail("collaborator", collaborator).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *ztkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(ztkerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *ztkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found in %s.%s", identifier, module, operation).
		Code(ztkerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ConfigError wraps a configuration loading or parsing failure
func ConfigError(operation, path string, cause error) *ztkerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("config.%s failed for %s", operation, path).
		Cause(cause).
		Code(ztkerror.CodeConfigError).
		Detail("path", path).
		Build()
}

// ExtractDetails extracts all details from a toolkit error
func ExtractDetails(err error) map[string]interface{} {
	var e *ztkerror.Error
	if stderrors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsInvalidSpec reports whether err signals a malformed options value
func IsInvalidSpec(err error) bool {
	return ztkerror.HasCode(err, ztkerror.CodeInvalidSpec)
}

// IsPlatformUnavailable reports whether err signals a failing collaborator
func IsPlatformUnavailable(err error) bool {
	return ztkerror.HasCode(err, ztkerror.CodePlatformUnavailable)
}
