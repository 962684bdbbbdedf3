// Package ui implements the interactive timer display using Bubble Tea,
// plus a plain fallback for non-TTY environments.
package ui

import "github.com/charmbracelet/lipgloss"

// Color constants matching the classic bright-ANSI timer look.
const (
	workColor     = "10" // bright green
	breakColor    = "9"  // bright red
	completeColor = "13" // bright purple
	clockColor    = "11" // bright yellow
	keyHintColor  = "12" // bright blue
	autostartOn   = "10"
	autostartOff  = "9"
)

// Style variables for consistent rendering.
var (
	// WorkHeaderStyle renders work phase banners.
	WorkHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(workColor)).
			Bold(true)

	// BreakHeaderStyle renders break phase banners.
	BreakHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(breakColor)).
				Bold(true)

	// CompleteStyle renders the final completion banners.
	CompleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(completeColor)).
			Bold(true)

	// CancelledStyle renders the cancellation banner.
	CancelledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(breakColor)).
			Bold(true)

	// ClockStyle renders the MM:SS remaining time.
	ClockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(clockColor)).
			Bold(true)

	// KeyHintStyle highlights the key in "press P" hints.
	KeyHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(keyHintColor)).
			Bold(true)

	// AutoOnStyle and AutoOffStyle render the autostart indicator.
	AutoOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(autostartOn))
	AutoOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(autostartOff))
)
