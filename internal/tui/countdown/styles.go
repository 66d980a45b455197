// ============================================================================
// ZTK - Utility Toolkit
// ============================================================================
//
// Package:     countdown
// Description: Lipgloss styles of the live countdown view
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package countdown

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/ztk/internal/tui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.ColorPrimary)

	remainingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.ColorFg).
			Padding(1, 0)

	expiredStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.ColorAccent).
			Padding(1, 0)

	targetStyle = lipgloss.NewStyle().
			Foreground(tui.ColorMuted)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tui.ColorMuted).
			Padding(1, 2)
)
