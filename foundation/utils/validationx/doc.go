// File: doc.go
// Title: Package Documentation for validationx
// Description: Package validationx provides ready-made validators built on
//              the core validation engine.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial package documentation
// - 2026-10-17 v0.2.0: Numeric enums and layered contact validation

// Package validationx provides validators built on foundation/core/validation.
//
// NumericEnum accepts a number only when it equals one of a closed set of
// values. Any Go integer or float type is accepted as input, including named
// types, and values compare numerically:
//
//	level := validationx.NumericEnum(1, 2, 3)
//	level.Validate(int64(2)).Valid // true
//	r := level.Validate(7)
//	r.ReasonCode()                 // VALIDATION_INVALID_VALUE
//	r.Errors[0].Expected           // []int{1, 2, 3}
//
// Non-numeric input fails with VALIDATION_TYPE before the membership check
// runs.
//
// ValidateEmail and ValidatePhone layer their options over the validation
// slice of the global configuration (email domains, phone country code).
// Failure messages follow the usual precedence: ErrorMessage at the call
// site, then the global "email" or "phone" message, then the built-in text.
// Email and Phone wrap both checks as chain validators.
package validationx
