// ============================================================================
// ZTK - Utility Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information of the toolkit and its CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// Modified:    2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version constants
const (
	// Toolkit is the version of the foundation packages
	Toolkit = "0.3.0"

	// CLI is the version of the ztk command
	CLI = "0.3.0"
)

// Commit is set at build time with -ldflags "-X .../version.Commit=..."
var Commit = ""

// Info describes the running binary
type Info struct {
	Toolkit   string `json:"toolkit"`
	CLI       string `json:"cli"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Current returns the version information of the running binary. Without
// an injected Commit the VCS revision recorded by the Go toolchain is used.
func Current() Info {
	commit := Commit
	if commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					commit = s.Value
				}
			}
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}

	return Info{
		Toolkit:   Toolkit,
		CLI:       CLI,
		Commit:    commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders a one-line summary
func (i Info) String() string {
	s := fmt.Sprintf("ztk %s (toolkit %s, %s, %s)", i.CLI, i.Toolkit, i.GoVersion, i.Platform)
	if i.Commit != "" {
		s += " commit " + i.Commit
	}
	return s
}
