package cli

import (
	"errors"
	"testing"

	"github.com/pomo-dev/pomo/internal/session"
	"github.com/pomo-dev/pomo/internal/timelex"
)

// Validation failures must surface before any timer is created, so the
// command funcs return without touching the terminal.

func TestRunPomodoroRejectsBadDurations(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"bad work", []string{"abc", "5m", "4"}, timelex.ErrInvalidDuration},
		{"bad break", []string{"25m", "xyz", "4"}, timelex.ErrInvalidDuration},
		{"zero work", []string{"0", "5m", "4"}, timelex.ErrInvalidDuration},
		{"sessions not a number", []string{"25m", "5m", "four"}, errUsage},
		{"zero sessions", []string{"25m", "5m", "0"}, session.ErrInvalidSessions},
		{"negative sessions", []string{"25m", "5m", "-1"}, session.ErrInvalidSessions},
		{"bad autostart", []string{"25m", "5m", "4", "x"}, errUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runPomodoro(pomodoroCmd, tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("runPomodoro(%v) = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestRunCountdownRejectsBadDuration(t *testing.T) {
	for _, arg := range []string{"", "abc", "0", "-5m"} {
		if err := runCountdown(countdownCmd, []string{arg}); !errors.Is(err, timelex.ErrInvalidDuration) {
			t.Errorf("runCountdown(%q) = %v, want ErrInvalidDuration", arg, err)
		}
	}
}
