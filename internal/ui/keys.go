package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pomo-dev/pomo/internal/config"
)

// KeyMap defines the keyboard bindings for the timer.
type KeyMap struct {
	Pause     key.Binding
	Autostart key.Binding
	Yes       key.Binding
	No        key.Binding
	Cancel    key.Binding
}

// NewKeyMap builds the bindings from the config, folding the pause key
// alternates (other keyboard layouts) into the pause binding.
func NewKeyMap(cfg *config.Config) KeyMap {
	pauseKeys := append([]string{cfg.Keys.Pause}, cfg.Keys.PauseAlternates...)
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(pauseKeys...),
			key.WithHelp(cfg.Keys.Pause, "pause/resume"),
		),
		Autostart: key.NewBinding(
			key.WithKeys(cfg.Keys.Autostart),
			key.WithHelp(cfg.Keys.Autostart, "toggle autostart"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}
