// Package mapx provides generic map helpers.
//
// Package: mapx
// Title: Map Utilities
// Description: Copying maps and listing keys in a stable order for output
//              and lookups.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Reduced to the helpers the toolkit uses
package mapx
