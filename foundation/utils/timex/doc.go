// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex provides date and countdown formatting for the
//              ztk toolkit.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-17 v0.2.0: Countdown and date formatting with layered options

// Package timex formats dates and countdowns.
//
// # Countdowns
//
// RemainingTimeForCountdown takes Unix seconds and renders the remaining
// time in one of three label styles:
//
//	short   1d 1h 1m 1s
//	long    1 day 1 hour 1 minute 1 second
//	custom  caller supplied labels, long labels for missing ones
//
// Leading zero units are dropped unless ShowZeros is set. MaxUnits keeps the
// most significant units. Numbers are grouped per the locale taken from the
// call site or from the global dateTime configuration. A target that has
// passed renders ExpiredLabel ("expired" by default).
//
// # Dates
//
// FormatDate accepts named layouts (iso, date, time, datetime, rfc3339,
// rfc1123, kitchen, compact, log, display, short) or any Go layout. The
// locale only affects "short", which picks the regional day/month order.
// Time zones are resolved through a cache; an unknown zone is reported as
// INVALID_SPEC.
//
// # Parsing
//
// Parse and ParseDuration accept the common layouts and phrases the CLI
// reads from its arguments, such as "2026-12-24", "24.12.2026", Unix
// seconds, "1h30m" or "2 days".
package timex
