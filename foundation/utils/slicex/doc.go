// Package slicex provides generic slice helpers.
//
// Package: slicex
// Title: Slice Utilities
// Description: Filtering, mapping, deduplication and search over slices of
//              any type. Nil inputs yield nil outputs so callers can keep
//              "unset" and "empty" apart.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-17 v0.2.0: Reduced to the helpers the toolkit uses
//
// Usage:
//
//	words := slicex.Compact(slicex.Map(strings.Split(s, ","), strings.TrimSpace))
//	types := slicex.Unique(allowed)
package slicex
