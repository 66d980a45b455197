// ============================================================================
// ZTK - Utility Toolkit
// ============================================================================
//
// Package:     countdown
// Description: Message types of the live countdown view
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package countdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is used for periodic updates
type tickMsg time.Time

// expiredMsg is sent once the target has been reached
type expiredMsg struct{}

func tick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
