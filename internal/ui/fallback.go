// fallback.go renders the timer without terminal control, for pipes and
// CI. There is no key handling: pause is unavailable, phases advance as
// if autostart were on, and the interrupt signal still cancels.
package ui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pomo-dev/pomo/internal/log"
	"github.com/pomo-dev/pomo/internal/notify"
	"github.com/pomo-dev/pomo/internal/session"
	"github.com/pomo-dev/pomo/internal/timelex"
	"github.com/pomo-dev/pomo/internal/timer"
)

func runFallback(m Model) (Outcome, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if m.plan == nil {
		m.notifier.Notify(notify.CountdownStart, "Countdown timer started")
		fmt.Println("\n--- Countdown Timer ---")
		if countdownPlain(ctx, m.timer) == timer.EventNone {
			return fallbackCancelled(m, m.timer.Kind())
		}
		m.notifier.Notify(notify.CountdownComplete, "Timer Complete!")
		m.logEvent(log.LogEvent{Event: log.EventPhaseComplete, Phase: "countdown"})
		fmt.Println("\n*** Timer Complete! ***")
		return OutcomeCompleted, nil
	}

	m.notifier.Notify(notify.SessionStart, "New pomodoro session started. Let's get to work!")
	m.logEvent(log.LogEvent{Event: log.EventSessionStarted, Sessions: m.plan.Sessions(), Command: "pomodoro"})

	for m.plan.State() == session.StateWork || m.plan.State() == session.StateBreak {
		t, err := timer.New(m.plan.PhaseDuration(), m.plan.PhaseKind())
		if err != nil {
			return OutcomeCancelled, err
		}

		if m.plan.State() == session.StateBreak {
			fmt.Printf("\n--- Break %d ---\n", m.plan.Current())
		} else {
			fmt.Printf("\n--- Work Session %d ---\n", m.plan.Current())
		}
		m.logEvent(log.LogEvent{Event: log.EventPhaseStarted, Phase: t.Kind().String(), Session: m.plan.Current()})

		ev := countdownPlain(ctx, t)
		if ev == timer.EventNone {
			m.plan.Cancel()
			return fallbackCancelled(m, t.Kind())
		}
		m.logEvent(log.LogEvent{Event: log.EventPhaseComplete, Phase: t.Kind().String(), Session: m.plan.Current()})

		if t.Kind() == timer.Work {
			event := notify.WorkComplete
			if ev == timer.EventEasterEgg {
				event = notify.WorkCompleteEgg
			}
			m.notifier.Notify(event, fmt.Sprintf("Work session %d complete. Time for a break!", m.plan.Current()))
		} else {
			m.notifier.Notify(notify.BreakComplete, fmt.Sprintf("Break %d complete. Time for work!", m.plan.Current()))
		}
		m.plan.Advance()
	}

	m.notifier.Notify(notify.PomodoroComplete, "Pomodoro complete!")
	m.logEvent(log.LogEvent{Event: log.EventSessionComplete, Sessions: m.plan.Sessions()})
	fmt.Println("\n*** Pomodoro Complete! ***")
	return OutcomeCompleted, nil
}

// countdownPlain ticks one phase at a one-second cadence, overwriting a
// single line. Returns the completing event, or EventNone if the context
// was cancelled first.
func countdownPlain(ctx context.Context, t *timer.Timer) timer.Event {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	last := time.Now()
	for {
		fmt.Printf("    %s\r", timelex.FormatClock(t.Remaining()))

		select {
		case <-ctx.Done():
			fmt.Println()
			return timer.EventNone
		case now := <-ticker.C:
			if ev := t.Tick(now.Sub(last)); ev != timer.EventNone {
				fmt.Printf("    %s\n", timelex.FormatClock(0))
				return ev
			}
			last = now
		}
	}
}

func fallbackCancelled(m Model, kind timer.Kind) (Outcome, error) {
	m.logEvent(log.LogEvent{Event: log.EventPhaseCancelled, Phase: kind.String()})
	fmt.Println("\nTimer Cancelled.")
	return OutcomeCancelled, nil
}
