// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for errors, derived from the error
//              code unless set explicitly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Mapping for toolkit codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers expected failures such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific mapping
	SeverityMedium

	// SeverityHigh covers programmer errors and unavailable collaborators
	SeverityHigh

	// SeverityCritical marks errors that leave the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidSpec, CodeInvalidConfig, CodePlatformUnavailable, CodeInternal:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
