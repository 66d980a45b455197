// File: stringx.go
// Title: Core String Utility Functions
// Description: Grapheme-aware helpers shared by the text transforms and the
//              CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-17 v0.2.0: Switched to grapheme clusters, dropped unused helpers

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// FirstNonBlank returns the first non-blank string from values, or "".
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// Graphemes splits s into user-perceived characters. A flag emoji or a
// letter with combining accents is one element.
func Graphemes(s string) []string {
	clusters := make([]string, 0, utf8.RuneCountInString(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// VisibleLength returns the number of grapheme clusters in s.
func VisibleLength(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// isBoundary reports whether a cluster is a word separator for truncation
func isBoundary(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsSpace(r) || r == '-' || r == '_'
}
