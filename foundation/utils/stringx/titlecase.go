// File: titlecase.go
// Title: Locale-Aware Title Casing
// Description: Converts text to title case with configurable separators and
//              lowercase/uppercase exception words.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial case conversion utilities
// - 2026-10-17 v0.2.0: Replaced with locale-aware title casing and exceptions

package stringx

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/ztk/foundation/core/i18n"
	"github.com/msto63/ztk/foundation/core/options"
)

// DefaultLowercaseWords are the short words kept lowercase inside titles
var DefaultLowercaseWords = []string{
	"a", "an", "the", "and", "or", "but", "for", "nor", "so", "yet",
	"at", "by", "in", "of", "on", "to", "up",
}

// TitleCaseOptions are call-site overrides; nil fields keep the default.
type TitleCaseOptions struct {
	LowercaseWords      []string
	UppercaseWords      []string
	Separators          []string
	ForceFirstUppercase *bool
	Locale              *string
}

// TitleCaseSpec is the effective title case configuration
type TitleCaseSpec struct {
	LowercaseWords      []string
	UppercaseWords      []string
	Separators          []string
	ForceFirstUppercase bool
	Locale              string
}

// DefaultTitleCaseSpec returns the built-in title case defaults
func DefaultTitleCaseSpec() TitleCaseSpec {
	return TitleCaseSpec{
		LowercaseWords:      append([]string(nil), DefaultLowercaseWords...),
		Separators:          []string{" ", "-", "_"},
		ForceFirstUppercase: true,
		Locale:              i18n.DefaultLocale,
	}
}

// ConvertToTitleCase capitalizes each word of value. Separators are kept
// as-is. An uppercase exception wins over a lowercase one; the first word
// ignores lowercase exceptions while ForceFirstUppercase is set.
func ConvertToTitleCase(value string, opts ...TitleCaseOptions) string {
	spec := DefaultTitleCaseSpec()
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}
	if value == "" {
		return value
	}

	tag, ok := i18n.ParseLocale(spec.Locale)
	if !ok {
		tag = language.Und
	}
	upper := cases.Upper(tag)
	lower := cases.Lower(tag)
	fold := cases.Fold()

	lowerSet := foldSet(fold, spec.LowercaseWords)
	upperSet := foldSet(fold, spec.UppercaseWords)
	seps := sortedSeparators(spec.Separators)

	var b strings.Builder
	b.Grow(len(value))
	first := true

	emit := func(word string) {
		if word == "" {
			return
		}
		key := fold.String(word)
		switch {
		case upperSet[key]:
			b.WriteString(upper.String(word))
		case lowerSet[key] && !(first && spec.ForceFirstUppercase):
			b.WriteString(lower.String(word))
		default:
			_, size := utf8.DecodeRuneInString(word)
			b.WriteString(upper.String(word[:size]))
			b.WriteString(lower.String(word[size:]))
		}
		first = false
	}

	start := 0
	for i := 0; i < len(value); {
		if sep := matchSeparator(value[i:], seps); sep != "" {
			emit(value[start:i])
			b.WriteString(sep)
			i += len(sep)
			start = i
			continue
		}
		_, size := utf8.DecodeRuneInString(value[i:])
		i += size
	}
	emit(value[start:])

	return b.String()
}

func foldSet(fold cases.Caser, words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[fold.String(w)] = true
	}
	return set
}

// sortedSeparators drops empty entries and orders longest first
func sortedSeparators(seps []string) []string {
	out := make([]string, 0, len(seps))
	for _, s := range seps {
		if s != "" {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

func matchSeparator(s string, seps []string) string {
	for _, sep := range seps {
		if strings.HasPrefix(s, sep) {
			return sep
		}
	}
	return ""
}
