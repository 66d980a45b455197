// ============================================================================
// ZTK - Utility Toolkit
// ============================================================================
//
// Package:     tui
// Description: Shared lipgloss palette and styles of the CLI and its views
// Author:      Mike Stoffels
// Created:     2025-12-06
// Modified:    2026-10-17
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PassStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("Error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

// RenderPass marks a successful check
func RenderPass(message string) string {
	return PassStyle.Render("✓ PASS") + " " + message
}

// RenderFail marks a failed check
func RenderFail(code, message string) string {
	return FailStyle.Render("✗ FAIL") + " " + LabelStyle.Render(code) + " " + message
}

// RenderField renders a "label: value" line
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + value
}
