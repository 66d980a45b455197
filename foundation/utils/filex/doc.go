// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex validates files before upload and probes
//              image dimensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial package documentation
// - 2026-10-17 v0.2.0: Rewritten for upload validation and image probing

// Package filex validates file metadata before an upload and reads image
// dimensions.
//
// Type allow-lists
//
// IsFileTypeAllowed compares a MIME type with an allow-list. Parameters such
// as "; charset=utf-8" are ignored and the comparison is case-insensitive
// unless CaseInsensitive is switched off. The allow-list comes from the
// call site, then the fileUpload slice of the global configuration, then
// DefaultAllowedTypes. With AllowWildcard, entries are glob patterns:
//
//	filex.IsFileTypeAllowed("image/webp", filex.FileTypeOptions{
//	    AllowedTypes:  []string{"image/*"},
//	    AllowWildcard: options.Of(true),
//	})
//	// true
//
// Pre-upload validation
//
// ValidateFileBeforeUpload runs three checks in order and stops at the
// first failure: the size against MaxSize megabytes (default 5), the type
// against the allow-list and finally the optional custom validator. The
// outcome is a validation.ValidationResult whose reason code is
// VALIDATION_FILE_SIZE, VALIDATION_FILE_TYPE or VALIDATION_CUSTOM.
//
// Messages are text/template strings rendered with MessageData. A call-site
// message wins over the global errorMessages entry ("fileSize", "fileType",
// "custom"), which wins over the built-in text. A non-empty message returned
// by the custom validator is used verbatim. Broken options, such as a
// non-positive MaxSize or a template that fails to render, are returned as
// INVALID_SPEC errors instead of a result.
//
// Image dimensions
//
// ImageDimensions reads width and height through a DimensionDecoder. The
// default decoder understands PNG, JPEG and GIF headers. The probe is
// bounded by Timeout (default 5s) and by the context. On failure the
// OnErrorThrow policy returns a PLATFORM_UNAVAILABLE error while
// OnErrorReturnNull logs a warning and returns nil dimensions.
package filex
