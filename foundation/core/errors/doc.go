// Package errors is the standard way toolkit modules build errors.
//
// Package: errors
// Title: Standard Error Construction for ZTK Foundation
// Description: Wraps the core error package with a fluent builder and one
//              constructor per failure class of the toolkit taxonomy. Every
//              error produced here records the module and operation that
//              raised it, so callers and logs can attribute failures without
//              parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-17 v0.2.0: InvalidSpec / PlatformUnavailable constructors, module
//                      list aligned with the toolkit packages
//
// Usage:
//
//	if spec.Length < 1 {
//		return "", errors.InvalidSpec(errors.ModuleStringx, "truncate", "length", spec.Length, "must be at least 1")
//	}
package errors
