// log.go implements "pomo log", which dumps recent diagnostic events
// from ~/.pomo/log.jsonl.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pomo-dev/pomo/internal/config"
	"github.com/pomo-dev/pomo/internal/log"
)

var logLimitFlag int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent timer events",
	Long: `Print the most recent diagnostic events: phase transitions,
cancellations, and notifier failures (a missing audio player shows up
here instead of interrupting a timer).`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVar(&logLimitFlag, "limit", 20, "Number of events to show")
}

func runLog(cmd *cobra.Command, args []string) error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("locating pomo home: %w", err)
	}
	logger, err := log.NewLogger(dir)
	if err != nil {
		return err
	}

	events, err := logger.ReadAll()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No events recorded yet.")
		return nil
	}

	start := 0
	if logLimitFlag > 0 && len(events) > logLimitFlag {
		start = len(events) - logLimitFlag
	}
	for _, ev := range events[start:] {
		line := fmt.Sprintf("%s  %-17s", ev.Time.Local().Format("2006-01-02 15:04:05"), ev.Event)
		if ev.Phase != "" {
			line += "  " + ev.Phase
		}
		if ev.Session > 0 {
			line += fmt.Sprintf(" #%d", ev.Session)
		}
		if ev.Error != "" {
			line += "  " + ev.Error
		}
		fmt.Println(line)
	}
	return nil
}
