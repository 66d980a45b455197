// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the toolkit. Codes are
//              stable strings so they can be matched by callers and rendered
//              into structured logs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Toolkit taxonomy codes, removed service/database codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Toolkit taxonomy
	CodeInvalidSpec         Code = "INVALID_SPEC"
	CodeValidationFailed    Code = "VALIDATION_FAILED"
	CodePlatformUnavailable Code = "PLATFORM_UNAVAILABLE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Value level failures
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength   Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsProgrammerError reports whether the code signals a defect at the call
// site rather than bad input or an unavailable collaborator.
func (c Code) IsProgrammerError() bool {
	return c == CodeInvalidSpec || c == CodeInvalidConfig
}
