// Package error provides structured, coded errors for the ZTK toolkit.
//
// Package: error
// Title: ZTK Error Handling Framework
// Description: Implements the Error type used by every toolkit operation. An Error
//              carries a stable code, a severity, free-form details and a captured
//              stack trace, and stays compatible with the standard error interface
//              (errors.Is / errors.As / errors.Unwrap).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Reduced code set to the toolkit taxonomy (invalid spec,
//                      validation failed, platform unavailable)
//
// Error taxonomy:
//
//   - CodeInvalidSpec: caller-supplied options contradict themselves (empty
//     charset, negative length). Signals a programmer error and is never coerced.
//   - CodeValidationFailed: an input failed a check under well-formed options.
//     Validation operations report this through a result value, not an error.
//   - CodePlatformUnavailable: a collaborator (image decoder, entropy source) is
//     missing, failed or timed out.
//
// Usage:
//
//	err := error.New("charset is empty after excluding ambiguous characters").
//		WithCode(error.CodeInvalidSpec).
//		WithOperation("stringx.GenerateUniqueCode").
//		WithDetail("charset", charset)
//
//	if error.HasCode(err, error.CodeInvalidSpec) {
//		// fix the call site
//	}
package error
