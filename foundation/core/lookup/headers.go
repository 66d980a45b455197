// Package lookup holds static tables: API header names and Stripe messages.
//
// Package: lookup
// Title: Static Lookup Tables
// Description: Data-only tables shared by toolkit consumers. Lookups never
//              fail; unknown keys resolve to a fallback.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
package lookup

// API header names. These are names only; never store token values here.
const (
	HeaderAuthToken     = "x-auth-token"
	HeaderAuthorization = "authorization"
	HeaderContentType   = "content-type"
	HeaderAccept        = "accept"
)

// HeaderKeys returns the API header names by their logical key
func HeaderKeys() map[string]string {
	return map[string]string{
		"authToken":     HeaderAuthToken,
		"authorization": HeaderAuthorization,
		"contentType":   HeaderContentType,
		"accept":        HeaderAccept,
	}
}
