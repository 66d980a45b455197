// File: code.go
// Title: Secure Unique Code Generation
// Description: Generates human-facing codes (vouchers, confirmation codes)
//              from a configurable alphabet using crypto/rand.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with secure random generation
// - 2026-10-17 v0.2.0: Reworked into segmented code generation with options

package stringx

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/options"
	"github.com/msto63/ztk/foundation/utils/slicex"
)

const (
	// Character sets for code generation
	LettersLowercase  = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits            = "0123456789"
	UpperAlphanumeric = LettersUppercase + Digits

	// AmbiguousChars are removed when ExcludeAmbiguous is set
	AmbiguousChars = "0OIl"
)

// entropy is swapped in tests
var entropy io.Reader = rand.Reader

// CodeOptions are call-site overrides; nil fields keep the default.
type CodeOptions struct {
	Length           *int
	Charset          *string
	Prefix           *string
	Suffix           *string
	Separator        *string
	Segments         []int
	ExcludeAmbiguous *bool
}

// CodeSpec is the effective code generation configuration
type CodeSpec struct {
	Length           int
	Charset          string
	Prefix           string
	Suffix           string
	Separator        string
	Segments         []int
	ExcludeAmbiguous bool
}

// DefaultCodeSpec returns the built-in code defaults
func DefaultCodeSpec() CodeSpec {
	return CodeSpec{
		Length:    6,
		Charset:   UpperAlphanumeric,
		Separator: "-",
	}
}

// GenerateUniqueCode returns Prefix + body + Suffix. The body is Length
// random characters, or one group per entry of Segments joined by
// Separator. Every character is drawn uniformly from the effective charset.
func GenerateUniqueCode(opts ...CodeOptions) (string, error) {
	spec := DefaultCodeSpec()
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}

	alphabet := effectiveCharset(spec.Charset, spec.ExcludeAmbiguous)
	if len(alphabet) == 0 {
		return "", errors.InvalidSpec(errors.ModuleStringx, "GenerateUniqueCode", "charset", spec.Charset, "no characters left to draw from")
	}

	segments := spec.Segments
	if len(segments) == 0 {
		if spec.Length < 1 {
			return "", errors.InvalidSpec(errors.ModuleStringx, "GenerateUniqueCode", "length", spec.Length, "must be at least 1")
		}
		segments = []int{spec.Length}
	}
	for _, n := range segments {
		if n < 1 {
			return "", errors.InvalidSpec(errors.ModuleStringx, "GenerateUniqueCode", "segments", spec.Segments, "every segment must be at least 1")
		}
	}

	parts := make([]string, len(segments))
	for i, n := range segments {
		part, err := randomFrom(alphabet, n)
		if err != nil {
			return "", errors.PlatformUnavailable(errors.ModuleStringx, "GenerateUniqueCode", "entropy source", err)
		}
		parts[i] = part
	}

	return spec.Prefix + strings.Join(parts, spec.Separator) + spec.Suffix, nil
}

// effectiveCharset deduplicates runes in first-seen order
func effectiveCharset(charset string, excludeAmbiguous bool) []rune {
	runes := slicex.Unique([]rune(charset))
	if !excludeAmbiguous {
		return runes
	}
	return slicex.Filter(runes, func(r rune) bool {
		return !strings.ContainsRune(AmbiguousChars, r)
	})
}

func randomFrom(alphabet []rune, length int) (string, error) {
	result := make([]rune, length)
	upper := big.NewInt(int64(len(alphabet)))
	for i := range result {
		idx, err := rand.Int(entropy, upper)
		if err != nil {
			return "", err
		}
		result[i] = alphabet[idx.Int64()]
	}
	return string(result), nil
}
