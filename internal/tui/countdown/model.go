// ============================================================================
// ZTK - Utility Toolkit
// ============================================================================
//
// Package:     countdown
// Description: Bubbletea model rendering a live countdown with progress
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package countdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/ztk/foundation/utils/timex"
	"github.com/msto63/ztk/internal/tui"
)

// Config holds countdown view configuration
type Config struct {
	Title   string
	Target  time.Time
	Options timex.CountdownOptions

	// Start anchors the progress bar; zero means the moment the view opens
	Start   time.Time
	Refresh time.Duration

	// ExitOnExpire ends the program when the target is reached
	ExitOnExpire bool

	// Now replaces the wall clock in tests
	Now func() time.Time
}

// DefaultConfig returns default configuration
func DefaultConfig(target time.Time) Config {
	return Config{
		Title:   "Countdown",
		Target:  target,
		Refresh: time.Second,
	}
}

// Model is the Bubbletea model of the countdown view
type Model struct {
	cfg      Config
	progress progress.Model

	remaining string
	percent   float64
	expired   bool
	err       error
	width     int
}

// New creates a countdown model
func New(cfg Config) Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Refresh <= 0 {
		cfg.Refresh = time.Second
	}
	if cfg.Start.IsZero() {
		cfg.Start = cfg.Now()
	}

	m := Model{
		cfg:      cfg,
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.refresh(cfg.Now())
	return m
}

// Init starts the refresh ticker
func (m Model) Init() tea.Cmd {
	return tick(m.cfg.Refresh)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = clamp(msg.Width-8, 10, 80)

	case tickMsg:
		m.refresh(m.cfg.Now())
		if m.err != nil {
			return m, tea.Quit
		}
		if m.expired {
			return m, func() tea.Msg { return expiredMsg{} }
		}
		return m, tick(m.cfg.Refresh)

	case expiredMsg:
		if m.cfg.ExitOnExpire {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) refresh(now time.Time) {
	m.remaining, m.err = timex.RemainingTime(m.cfg.Target, now, m.cfg.Options)
	m.expired = !now.Before(m.cfg.Target)

	total := m.cfg.Target.Sub(m.cfg.Start)
	switch {
	case m.expired || total <= 0:
		m.percent = 1
	default:
		m.percent = float64(now.Sub(m.cfg.Start)) / float64(total)
		if m.percent < 0 {
			m.percent = 0
		}
	}
}

// View renders the model
func (m Model) View() string {
	if m.err != nil {
		return tui.RenderError(m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.cfg.Title))
	b.WriteString("\n")
	if m.expired {
		b.WriteString(expiredStyle.Render(m.remaining))
	} else {
		b.WriteString(remainingStyle.Render(m.remaining))
	}
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.percent))
	b.WriteString("\n\n")
	b.WriteString(targetStyle.Render(fmt.Sprintf("until %s", m.cfg.Target.Format(timex.DisplayDateTime))))

	return frameStyle.Render(b.String()) + "\n" + tui.RenderHelp("q quit") + "\n"
}

// Remaining returns the rendered remaining time
func (m Model) Remaining() string {
	return m.remaining
}

// Expired reports whether the target has been reached
func (m Model) Expired() bool {
	return m.expired
}

// Err returns the formatting error that stopped the view, if any
func (m Model) Err() error {
	return m.err
}

// Run shows the countdown until it expires or the user quits
func Run(cfg Config, opts ...tea.ProgramOption) (Model, error) {
	final, err := tea.NewProgram(New(cfg), opts...).Run()
	if err != nil {
		return Model{}, err
	}
	m := final.(Model)
	return m, m.err
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
