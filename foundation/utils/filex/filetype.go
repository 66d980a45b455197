// File: filetype.go
// Title: MIME Type Allow-Lists
// Description: Checks MIME types against allow-lists with optional glob
//              wildcards such as "image/*".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package filex

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/msto63/ztk/foundation/core/config"
	"github.com/msto63/ztk/foundation/core/options"
	"github.com/msto63/ztk/foundation/utils/slicex"
)

// DefaultAllowedTypes is the upload allow-list when nothing is configured
var DefaultAllowedTypes = []string{"image/png", "image/jpeg", "image/gif"}

// DefaultImageTypes is the allow-list used by ImageTypeAllowed
var DefaultImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp", "image/svg+xml"}

// FileTypeOptions are call-site overrides; nil fields keep the default.
type FileTypeOptions struct {
	AllowedTypes    []string
	CaseInsensitive *bool
	AllowWildcard   *bool
}

// FileTypeSpec is the effective type check configuration
type FileTypeSpec struct {
	AllowedTypes    []string
	CaseInsensitive bool
	AllowWildcard   bool
}

// DefaultFileTypeSpec returns the built-in type check defaults
func DefaultFileTypeSpec() FileTypeSpec {
	return FileTypeSpec{
		AllowedTypes:    append([]string(nil), DefaultAllowedTypes...),
		CaseInsensitive: true,
	}
}

// fileTypeGlobals is the slice of the global configuration type checks read
type fileTypeGlobals struct {
	AllowedTypes []string
}

// IsFileTypeAllowed reports whether mimeType is on the allow-list. The
// allow-list defaults to the global fileUpload configuration. With
// AllowWildcard, entries are glob patterns: "image/*" matches any image
// type and "*/*" matches everything.
func IsFileTypeAllowed(mimeType string, opts ...FileTypeOptions) bool {
	var slice fileTypeGlobals
	if global := config.Current(); global.FileUpload != nil {
		slice.AllowedTypes = global.FileUpload.AllowedTypes
	}

	spec := options.Resolve(DefaultFileTypeSpec(), slice)
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}
	return spec.Allows(mimeType)
}

// ImageTypeAllowed is IsFileTypeAllowed with DefaultImageTypes as the
// allow-list; opts may still replace it.
func ImageTypeAllowed(mimeType string, opts ...FileTypeOptions) bool {
	spec := options.Resolve(DefaultFileTypeSpec(), FileTypeOptions{AllowedTypes: DefaultImageTypes})
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}
	return spec.Allows(mimeType)
}

// Allows applies the spec to mimeType
func (s FileTypeSpec) Allows(mimeType string) bool {
	candidate := BaseMimeType(mimeType)
	if candidate == "" {
		return false
	}
	if s.CaseInsensitive {
		candidate = strings.ToLower(candidate)
	}

	return slicex.ContainsBy(s.AllowedTypes, func(entry string) bool {
		allowed := BaseMimeType(entry)
		if s.CaseInsensitive {
			allowed = strings.ToLower(allowed)
		}
		if allowed == candidate {
			return true
		}
		if s.AllowWildcard && strings.ContainsAny(allowed, "*?[{") {
			ok, err := doublestar.Match(allowed, candidate)
			return err == nil && ok
		}
		return false
	})
}
