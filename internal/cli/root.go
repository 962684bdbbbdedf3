// Package cli defines Cobra command definitions for the pomo CLI.
// This file contains the root command, exit-code mapping, and help output.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pomo-dev/pomo/internal/config"
	"github.com/pomo-dev/pomo/internal/log"
	"github.com/pomo-dev/pomo/internal/notify"
	"github.com/pomo-dev/pomo/internal/session"
	"github.com/pomo-dev/pomo/internal/timelex"
)

// Exit codes. Cancellation follows the 128+SIGINT shell convention so
// scripts can tell "user stopped the timer" from a real failure.
const (
	exitOK        = 0
	exitError     = 1
	exitUsage     = 2
	exitCancelled = 130
)

// ErrCancelled reports that the user cancelled the timer. Not a fault:
// no usage or stack trace is surfaced, only the distinct exit code.
var ErrCancelled = errors.New("timer cancelled")

// errUsage marks argument mistakes that are not covered by a more
// specific validation error.
var errUsage = errors.New("invalid arguments")

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "A stylish terminal pomodoro and countdown timer",
	Long: `Pomo runs interactive countdown and pomodoro timers in the terminal,
with a live progress bar, single-key pause/resume, and sound/desktop
notifications on every transition.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command and maps errors to exit codes.
// Called from main.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		os.Exit(exitOK)
	}

	switch {
	case errors.Is(err, ErrCancelled):
		os.Exit(exitCancelled)
	case errors.Is(err, timelex.ErrInvalidDuration),
		errors.Is(err, session.ErrInvalidSessions),
		errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitUsage)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}

// runtimeDeps loads the config, event logger and notifier shared by the
// timer commands. A home directory that cannot be resolved degrades to a
// discard logger; the timer must run regardless.
func runtimeDeps() (*config.Config, *log.Logger, notify.Notifier) {
	cfg := config.Load()

	logger := log.Discard()
	if dir, err := config.Dir(); err == nil {
		if l, lerr := log.NewLogger(dir); lerr == nil {
			logger = l
		}
	}

	return cfg, logger, notify.NewExecNotifier(cfg, logger)
}

func init() {
	rootCmd.AddCommand(pomodoroCmd)
	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(logCmd)
}
