// File: truncate.go
// Title: Visible-Length String Truncation
// Description: Shortens strings to a number of visible characters at the
//              start, middle or end, optionally on word boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/options"
)

// TruncatePosition selects where the ellipsis goes
type TruncatePosition string

const (
	TruncateStart  TruncatePosition = "start"
	TruncateMiddle TruncatePosition = "middle"
	TruncateEnd    TruncatePosition = "end"
)

// TruncateOptions are call-site overrides; nil fields keep the default.
type TruncateOptions struct {
	Length       *int
	Ellipsis     *string
	Position     *TruncatePosition
	WordBoundary *bool
}

// TruncateSpec is the effective truncation configuration
type TruncateSpec struct {
	Length       int
	Ellipsis     string
	Position     TruncatePosition
	WordBoundary bool
}

// DefaultTruncateSpec returns the built-in truncation defaults
func DefaultTruncateSpec() TruncateSpec {
	return TruncateSpec{
		Length:   10,
		Ellipsis: "...",
		Position: TruncateEnd,
	}
}

// TruncateString shortens value to at most Length visible characters plus
// the ellipsis. Strings that already fit are returned unchanged.
func TruncateString(value string, opts ...TruncateOptions) (string, error) {
	spec := DefaultTruncateSpec()
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}

	if spec.Length < 1 {
		return "", errors.InvalidSpec(errors.ModuleStringx, "TruncateString", "length", spec.Length, "must be at least 1")
	}
	switch spec.Position {
	case TruncateStart, TruncateMiddle, TruncateEnd:
	default:
		return "", errors.InvalidSpec(errors.ModuleStringx, "TruncateString", "position", spec.Position, "must be start, middle or end")
	}

	clusters := Graphemes(value)
	if len(clusters) <= spec.Length {
		return value, nil
	}

	switch spec.Position {
	case TruncateStart:
		return spec.Ellipsis + keepTail(clusters, spec.Length, spec.WordBoundary), nil
	case TruncateMiddle:
		front := (spec.Length + 1) / 2
		back := spec.Length - front
		return keepHead(clusters, front, spec.WordBoundary) + spec.Ellipsis + keepTail(clusters, back, spec.WordBoundary), nil
	default:
		return keepHead(clusters, spec.Length, spec.WordBoundary) + spec.Ellipsis, nil
	}
}

// keepHead returns at most n leading clusters. With words set it cuts at the
// last boundary inside the window, falling back to a hard cut.
func keepHead(clusters []string, n int, words bool) string {
	if n <= 0 {
		return ""
	}
	if n >= len(clusters) {
		return strings.Join(clusters, "")
	}
	if words {
		for i := n; i > 0; i-- {
			if !isBoundary(clusters[i]) {
				continue
			}
			head := clusters[:i]
			for len(head) > 0 && isBoundary(head[len(head)-1]) {
				head = head[:len(head)-1]
			}
			if len(head) > 0 {
				return strings.Join(head, "")
			}
			break
		}
	}
	return strings.Join(clusters[:n], "")
}

// keepTail is the mirror of keepHead for the trailing n clusters
func keepTail(clusters []string, n int, words bool) string {
	if n <= 0 {
		return ""
	}
	if n >= len(clusters) {
		return strings.Join(clusters, "")
	}
	start := len(clusters) - n
	if words {
		for j := start - 1; j < len(clusters)-1; j++ {
			if !isBoundary(clusters[j]) {
				continue
			}
			tail := clusters[j+1:]
			for len(tail) > 0 && isBoundary(tail[0]) {
				tail = tail[1:]
			}
			if len(tail) > 0 {
				return strings.Join(tail, "")
			}
			break
		}
	}
	return strings.Join(clusters[start:], "")
}
