// Package i18n adapts golang.org/x/text to the needs of the toolkit.
//
// Package: i18n
// Title: Locale Primitives
// Description: Locale parsing and matching, locale-aware number printers and
//              separators, and cached message templates. The toolkit does not
//              translate; it only lets operations follow a locale's casing
//              and number conventions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Translation manager with file based locales
// - 2026-10-17 v0.2.0: Reduced to locale primitives over golang.org/x/text
//
// Usage:
//
//	tag, ok := i18n.ParseLocale("de_DE.UTF-8") // de-DE, true
//	seps, _ := i18n.NumberSeparators("de-DE")  // {Decimal: ",", Grouping: "."}
//	i18n.FormatInteger("en-US", 1234)          // "1,234"
//	msg, err := i18n.RenderMessage("{{.Name}} is too large", file)
package i18n
