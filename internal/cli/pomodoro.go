// pomodoro.go implements the "pomo pomodoro" command which runs the
// work/break session sequence.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pomo-dev/pomo/internal/session"
	"github.com/pomo-dev/pomo/internal/timelex"
	"github.com/pomo-dev/pomo/internal/ui"
)

var autostartFlag bool

var pomodoroCmd = &cobra.Command{
	Use:     "pomodoro <work> <break> <sessions> [a]",
	Aliases: []string{"tpom"},
	Short:   "Run a pomodoro timer",
	Long: `Run a sequence of work and break sessions. Durations accept an optional
s/m/h suffix; a bare number means minutes ("25 5 4" is 25-minute work
sessions with 5-minute breaks, four times). Append "a" (or use
--autostart) to advance between phases without waiting for a keypress.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runPomodoro,
}

func init() {
	pomodoroCmd.Flags().BoolVar(&autostartFlag, "autostart", false, "Advance between phases without confirmation")
}

func runPomodoro(cmd *cobra.Command, args []string) error {
	work, err := timelex.Parse(args[0])
	if err != nil {
		return fmt.Errorf("work duration: %w", err)
	}
	brk, err := timelex.Parse(args[1])
	if err != nil {
		return fmt.Errorf("break duration: %w", err)
	}
	sessions, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: session count %q is not a number", errUsage, args[2])
	}

	autostart := autostartFlag
	if len(args) == 4 && args[3] != "" {
		if args[3] != "a" {
			return fmt.Errorf("%w: invalid autostart parameter %q (use \"a\")", errUsage, args[3])
		}
		autostart = true
	}

	plan, err := session.NewPlan(work, brk, sessions, autostart)
	if err != nil {
		return err
	}

	cfg, logger, notifier := runtimeDeps()
	m, err := ui.NewPomodoro(cfg, notifier, logger, plan)
	if err != nil {
		return err
	}

	outcome, err := ui.Run(m)
	if err != nil {
		return err
	}
	if outcome == ui.OutcomeCancelled {
		return ErrCancelled
	}
	return nil
}
