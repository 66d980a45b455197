// File: locale.go
// Title: Locale Parsing and Matching
// Description: Turns locale strings from options and the environment into
//              language tags and matches them against the locales an
//              operation has specific behavior for.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-17 v0.2.0: Backed by golang.org/x/text/language, Manager removed

package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en-US"

// ParseLocale parses a BCP 47 locale string. The boolean is false when the
// string is empty or unparsable; the returned tag is then language.Und.
func ParseLocale(locale string) (language.Tag, bool) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return language.Und, false
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// NormalizeLocale normalizes a locale string to the "ll-CC" form. POSIX
// spellings like "de_DE.UTF-8" are accepted. Returns "" for malformed input.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		locale = locale[:idx]
	}
	if locale == "" || strings.EqualFold(locale, "C") || strings.EqualFold(locale, "POSIX") {
		return ""
	}

	parts := strings.Split(strings.ReplaceAll(locale, "_", "-"), "-")
	lang := strings.ToLower(parts[0])
	if len(lang) != 2 && len(lang) != 3 {
		return ""
	}
	if len(parts) > 1 && len(parts[1]) == 2 {
		return lang + "-" + strings.ToUpper(parts[1])
	}
	return lang
}

// SplitLocale splits a locale into language and region parts
func SplitLocale(locale string) (lang, region string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}
	lang, region, _ = strings.Cut(normalized, "-")
	return lang, region
}

// MatchLocale returns the entry of supported that best matches locale, or
// "" if nothing is a reasonable match.
func MatchLocale(locale string, supported []string) string {
	tag, ok := ParseLocale(locale)
	if !ok || len(supported) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		t, ok := ParseLocale(s)
		if !ok {
			t = language.Und
		}
		tags = append(tags, t)
	}

	_, index, confidence := language.NewMatcher(tags).Match(tag)
	if confidence == language.No {
		return ""
	}
	return supported[index]
}

// DetectLocale returns the user's locale from LC_ALL, LC_MESSAGES or LANG,
// falling back to DefaultLocale
func DetectLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if normalized := NormalizeLocale(os.Getenv(key)); normalized != "" {
			return normalized
		}
	}
	return DefaultLocale
}
