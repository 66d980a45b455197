// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the toolkit's text transforms and
//              unique code generation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-17 v0.3.0: Rewritten for truncation, title case, regex and codes

// Package stringx provides text transforms for the ztk toolkit.
//
// Overview
//
// Every operation takes optional call-site options whose fields are
// pointers (or slices); a nil field keeps the built-in default. Options are
// merged with options.Resolve, so several option values can be passed and
// later ones win.
//
//   - TruncateString: shorten to a visible length at the start, middle or end
//   - ConvertToTitleCase: locale-aware title casing with exception words
//   - CreateRegexMatch: compile a pattern with single-letter flags
//   - GenerateUniqueCode: random codes from crypto/rand, optionally segmented
//
// Lengths are counted in grapheme clusters, so "é" written with a combining
// accent and a flag emoji each count as one character.
//
// Usage Examples
//
//	short, _ := stringx.TruncateString("Hello wonderful world", stringx.TruncateOptions{
//	    Length:       options.Of(10),
//	    WordBoundary: options.Of(true),
//	})
//	// "Hello..."
//
//	title := stringx.ConvertToTitleCase("the lord of the rings")
//	// "The Lord of the Rings"
//
//	code, _ := stringx.GenerateUniqueCode(stringx.CodeOptions{
//	    Segments:         []int{4, 4},
//	    ExcludeAmbiguous: options.Of(true),
//	})
//	// e.g. "K7QX-M2TP"
//
// Errors
//
// Options that contradict themselves (length below one, unknown position,
// unsupported regex flag, empty charset) produce an INVALID_SPEC error from
// foundation/core/error. A failing entropy source produces
// PLATFORM_UNAVAILABLE.
package stringx
