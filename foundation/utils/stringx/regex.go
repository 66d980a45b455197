// File: regex.go
// Title: Flag-Aware Regular Expression Construction
// Description: Builds compiled matchers from a pattern plus single-letter
//              flags, with optional escaping of the pattern.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation, compiled expressions are cached

package stringx

import (
	"regexp"
	"strings"

	"github.com/msto63/ztk/foundation/core/cache"
	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/options"
)

// canonical flag order; g and u carry no inline equivalent
const flagOrder = "gimsu"

// compiled holds expressions by their final source including inline flags
var compiled = cache.New[string, *regexp.Regexp](cache.DefaultConfig())

// RegexOptions are call-site overrides; nil fields keep the default.
type RegexOptions struct {
	Flags  *string
	Escape *bool
	Global *bool
}

// RegexSpec is the effective regex configuration
type RegexSpec struct {
	Flags  string
	Escape bool
	Global bool
}

// RegexMatch is a compiled pattern together with its normalized flags
type RegexMatch struct {
	re     *regexp.Regexp
	source string
	flags  string
}

// CreateRegexMatch compiles pattern. Flags are letters from "gimsu"; g marks
// the matcher global, i, m and s map to the RE2 inline flags and u is
// accepted for compatibility. Any other flag is rejected.
func CreateRegexMatch(pattern string, opts ...RegexOptions) (*RegexMatch, error) {
	var spec RegexSpec
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}

	flags, err := normalizeFlags(spec.Flags, spec.Global)
	if err != nil {
		return nil, err
	}

	source := pattern
	if spec.Escape {
		source = regexp.QuoteMeta(pattern)
	}

	expr := source
	var inline strings.Builder
	for _, f := range flags {
		if f == 'i' || f == 'm' || f == 's' {
			inline.WriteRune(f)
		}
	}
	if inline.Len() > 0 {
		expr = "(?" + inline.String() + ")" + source
	}

	re, err := compiled.GetOrSet(expr, func() (*regexp.Regexp, error) {
		return regexp.Compile(expr)
	})
	if err != nil {
		return nil, errors.InvalidSpecCause(errors.ModuleStringx, "CreateRegexMatch", "pattern", pattern, err)
	}
	return &RegexMatch{re: re, source: source, flags: flags}, nil
}

func normalizeFlags(raw string, global bool) (string, error) {
	seen := make(map[rune]bool, len(raw)+1)
	for _, f := range raw {
		if !strings.ContainsRune(flagOrder, f) {
			return "", errors.InvalidSpec(errors.ModuleStringx, "CreateRegexMatch", "flags", raw, "unsupported flag "+string(f))
		}
		seen[f] = true
	}
	if global {
		seen['g'] = true
	}

	var b strings.Builder
	for _, f := range flagOrder {
		if seen[f] {
			b.WriteRune(f)
		}
	}
	return b.String(), nil
}

// Regexp returns the compiled expression
func (m *RegexMatch) Regexp() *regexp.Regexp { return m.re }

// Source returns the pattern after escaping, without inline flags
func (m *RegexMatch) Source() string { return m.source }

// Flags returns the normalized flag letters
func (m *RegexMatch) Flags() string { return m.flags }

// Global reports whether the g flag is set
func (m *RegexMatch) Global() bool { return strings.ContainsRune(m.flags, 'g') }

// String renders the matcher as /source/flags
func (m *RegexMatch) String() string { return "/" + m.source + "/" + m.flags }

// MatchString reports whether s contains a match
func (m *RegexMatch) MatchString(s string) bool { return m.re.MatchString(s) }

// Match returns every match when global, otherwise the first match followed
// by its capture groups. It returns nil when nothing matches.
func (m *RegexMatch) Match(s string) []string {
	if m.Global() {
		return m.re.FindAllString(s, -1)
	}
	return m.re.FindStringSubmatch(s)
}
