// Package config handles reading and writing ~/.pomo/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for ~/.pomo/config.yaml.
type Config struct {
	Version  int            `yaml:"version"`
	Keys     KeysConfig     `yaml:"keys"`
	Display  DisplayConfig  `yaml:"display"`
	Audio    AudioConfig    `yaml:"audio"`
	Desktop  DesktopConfig  `yaml:"desktop"`
	Reminder ReminderConfig `yaml:"reminder"`
}

// KeysConfig maps the interactive keys. PauseAlternates lets the pause
// key work on non-Latin layouts (the default covers Cyrillic p).
type KeysConfig struct {
	Pause           string   `yaml:"pause"`
	PauseAlternates []string `yaml:"pause_alternates"`
	Autostart       string   `yaml:"autostart"`
}

// DisplayConfig controls the live progress line.
type DisplayConfig struct {
	BarWidth   int `yaml:"bar_width"`
	TickMillis int `yaml:"tick_millis"`
}

// AudioConfig names the player command and the sound file per event.
// An empty player disables audio entirely.
type AudioConfig struct {
	Player     string            `yaml:"player"`
	PlayerArgs []string          `yaml:"player_args"`
	SoundDir   string            `yaml:"sound_dir"`
	Sounds     map[string]string `yaml:"sounds"`
}

// DesktopConfig names the desktop notification command. An empty command
// disables popups. DismissCommand is the mako-style control command used
// to withdraw pending popups; empty disables dismissal.
type DesktopConfig struct {
	Command        string `yaml:"command"`
	AppName        string `yaml:"app_name"`
	DismissCommand string `yaml:"dismiss_command"`
}

// ReminderConfig sets the overdue reminder cadence, in seconds.
type ReminderConfig struct {
	PhaseInterval     int `yaml:"phase_interval"`
	CountdownInterval int `yaml:"countdown_interval"`
}

const configFile = "config.yaml"

// Dir returns the pomo home directory, ~/.pomo by default, honoring
// POMO_HOME as an override for tests and scripting.
func Dir() (string, error) {
	if dir := os.Getenv("POMO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".pomo"), nil
}

// Read reads config.yaml from the given pomo home directory.
// Returns an error if the file is not found or YAML is malformed.
func Read(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Write writes cfg to config.yaml in the given pomo home directory.
// Creates the directory if it does not exist.
func Write(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Load reads the config from the pomo home directory, falling back to
// defaults when no config file exists yet.
func Load() *Config {
	dir, err := Dir()
	if err != nil {
		return Default()
	}
	cfg, err := Read(dir)
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Version: 1,
		Keys: KeysConfig{
			Pause:           "p",
			PauseAlternates: []string{"з"},
			Autostart:       "a",
		},
		Display: DisplayConfig{
			BarWidth:   20,
			TickMillis: 100,
		},
		Audio: AudioConfig{
			Player:     "mpg123",
			PlayerArgs: []string{"-q"},
			SoundDir:   "media",
			Sounds: map[string]string{
				"session_start":      "aight-let-s-do-it.mp3",
				"work_complete":      "break-time.mp3",
				"work_complete_egg":  "are-you-winning-son.mp3",
				"break_complete":     "back-to-work.mp3",
				"pomodoro_complete":  "have-a-good-one.mp3",
				"countdown_start":    "bell.mp3",
				"countdown_complete": "gong.mp3",
				"reminder_break":     "break-time.mp3",
				"reminder_work":      "back-to-work.mp3",
				"reminder_countdown": "gong.mp3",
			},
		},
		Desktop: DesktopConfig{
			Command:        "notify-send",
			AppName:        "pomo",
			DismissCommand: "makoctl",
		},
		Reminder: ReminderConfig{
			PhaseInterval:     120,
			CountdownInterval: 60,
		},
	}
}
