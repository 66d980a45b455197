// Package options merges layered option values into an effective spec.
//
// Package: options
// Title: Options Resolver
// Description: Every toolkit operation resolves its effective options from
//              built-in defaults, the matching slice of the global
//              configuration and the call-site options, in that order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Layers are structs whose fields are matched to the target by name. A
// layer field overrides when it is "provided":
//
//   - pointer, slice, map, func and interface fields when non-nil; pointers
//     are dereferenced, so options.Of("") overrides with an empty string
//   - any other field when it is not the zero value
//
// Usage:
//
//	spec := options.Resolve(defaultTruncate, globalSlice, TruncateOptions{
//		Length:   options.Of(20),
//		Ellipsis: options.Of("…"),
//	})
package options
