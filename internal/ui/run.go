package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// IsTTY returns true if stdin and stdout are connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Run executes the model to completion. On a TTY it runs the Bubble Tea
// program inline (no alternate screen) so banners scroll naturally; the
// runtime owns raw mode and restores the terminal on every exit path.
// Off a TTY it delegates to the plain fallback loop.
func Run(m Model) (Outcome, error) {
	if !IsTTY() {
		return runFallback(m)
	}

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return OutcomeCancelled, fmt.Errorf("running timer ui: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return OutcomeCancelled, fmt.Errorf("unexpected final model %T", final)
	}
	if fm.Err() != nil {
		return OutcomeCancelled, fm.Err()
	}
	return fm.Outcome(), nil
}
