// countdown.go implements the "pomo countdown" command for a single
// standalone countdown.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pomo-dev/pomo/internal/timelex"
	"github.com/pomo-dev/pomo/internal/ui"
)

var countdownCmd = &cobra.Command{
	Use:     "countdown <duration>",
	Aliases: []string{"tcount"},
	Short:   "Run a simple countdown timer",
	Long: `Count down a single duration. Accepts an optional s/m/h suffix; a bare
number means minutes ("5" and "5m" both count down five minutes, "30s"
thirty seconds). After completion the timer tracks overdue time until
the pause key dismisses it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCountdown,
}

func runCountdown(cmd *cobra.Command, args []string) error {
	total, err := timelex.Parse(args[0])
	if err != nil {
		return fmt.Errorf("countdown duration: %w", err)
	}

	cfg, logger, notifier := runtimeDeps()
	m, err := ui.NewCountdown(cfg, notifier, logger, total)
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
