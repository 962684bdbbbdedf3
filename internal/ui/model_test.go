package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pomo-dev/pomo/internal/config"
	"github.com/pomo-dev/pomo/internal/notify"
	"github.com/pomo-dev/pomo/internal/session"
)

// tick feeds one synthetic tick into the model.
func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	nm, _ := m.Update(tickMsg(at))
	return nm.(Model)
}

// run advances the model's clock by total in steps, as the tick chain
// would.
func run(t *testing.T, m Model, from time.Time, total, step time.Duration) (Model, time.Time) {
	t.Helper()
	at := from
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		at = at.Add(step)
		m = tick(t, m, at)
	}
	return m, at
}

// press feeds one key rune into the model.
func press(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return nm.(Model), cmd
}

func newCountdownModel(t *testing.T, rec *notify.Recorder, total time.Duration) Model {
	t.Helper()
	m, err := NewCountdown(config.Default(), rec, nil, total)
	if err != nil {
		t.Fatalf("NewCountdown failed: %v", err)
	}
	return m
}

func newPomodoroModel(t *testing.T, rec *notify.Recorder, sessions int, autostart bool) Model {
	t.Helper()
	plan, err := session.NewPlan(2*time.Second, time.Second, sessions, autostart)
	if err != nil {
		t.Fatalf("NewPlan failed: %v", err)
	}
	m, err := NewPomodoro(config.Default(), rec, nil, plan)
	if err != nil {
		t.Fatalf("NewPomodoro failed: %v", err)
	}
	return m
}

func TestPauseKeyTogglesCountdown(t *testing.T) {
	m := newCountdownModel(t, &notify.Recorder{}, 10*time.Second)
	base := time.Now()

	m = tick(t, m, base) // establish lastTick
	m = tick(t, m, base.Add(time.Second))
	if got := m.timer.Remaining(); got != 9*time.Second {
		t.Fatalf("remaining = %v, want 9s", got)
	}

	m, _ = press(t, m, 'p')
	if !m.timer.Paused() {
		t.Fatal("pause key should pause the timer")
	}

	// Ticks while paused change nothing.
	m = tick(t, m, base.Add(5*time.Second))
	if got := m.timer.Remaining(); got != 9*time.Second {
		t.Errorf("remaining changed under pause: %v", got)
	}

	m, _ = press(t, m, 'p')
	if m.timer.Paused() {
		t.Error("pause key should resume the timer")
	}
}

func TestPauseKeyAlternateLayout(t *testing.T) {
	m := newCountdownModel(t, &notify.Recorder{}, 10*time.Second)

	m, _ = press(t, m, 'з')
	if !m.timer.Paused() {
		t.Error("Cyrillic pause key should pause the timer")
	}
}

func TestCtrlCCancels(t *testing.T) {
	m := newCountdownModel(t, &notify.Recorder{}, 10*time.Second)

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = nm.(Model)

	if m.state != stateCancelled {
		t.Errorf("state = %v, want cancelled", m.state)
	}
	if m.Outcome() != OutcomeCancelled {
		t.Errorf("outcome = %v, want cancelled", m.Outcome())
	}
	if !m.timer.Cancelled() {
		t.Error("underlying timer should be cancelled")
	}
	if cmd == nil {
		t.Error("cancel should produce a quit command")
	}
}

func TestInterruptCancels(t *testing.T) {
	rec := &notify.Recorder{}
	m := newPomodoroModel(t, rec, 2, true)

	nm, _ := m.Update(tea.InterruptMsg{})
	m = nm.(Model)

	if m.Outcome() != OutcomeCancelled {
		t.Errorf("outcome = %v, want cancelled", m.Outcome())
	}
	if m.plan.State() != session.StateCancelled {
		t.Errorf("plan state = %v, want cancelled", m.plan.State())
	}
	// Cancellation fires no completion notifications.
	if rec.Count(notify.WorkComplete) != 0 || rec.Count(notify.PomodoroComplete) != 0 {
		t.Errorf("unexpected completion notifications: %v", rec.Calls())
	}
}

func TestViewIsReadOnly(t *testing.T) {
	m := newCountdownModel(t, &notify.Recorder{}, 10*time.Second)
	base := time.Now()
	m = tick(t, m, base)

	before := m.timer.Remaining()
	for i := 0; i < 5; i++ {
		_ = m.View()
	}
	if m.timer.Remaining() != before || m.timer.Paused() || m.timer.Cancelled() {
		t.Error("View must not mutate timer state")
	}
}

func TestPhaseViewContents(t *testing.T) {
	m := newPomodoroModel(t, &notify.Recorder{}, 2, false)
	base := time.Now()
	m = tick(t, m, base)

	v := m.View()
	if !strings.Contains(v, "00:02") {
		t.Errorf("view should show the remaining clock, got %q", v)
	}
	if !strings.Contains(v, "Auto:") {
		t.Errorf("pomodoro view should show the autostart indicator, got %q", v)
	}

	m, _ = press(t, m, 'p')
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}
}

func TestAutostartToggleKey(t *testing.T) {
	m := newPomodoroModel(t, &notify.Recorder{}, 2, false)

	m, _ = press(t, m, 'a')
	if !m.plan.Autostart() {
		t.Error("autostart key should enable autostart")
	}
	m, _ = press(t, m, 'a')
	if m.plan.Autostart() {
		t.Error("autostart key should disable autostart")
	}
}

func TestPomodoroAutostartRunsToCompletion(t *testing.T) {
	rec := &notify.Recorder{}
	m := newPomodoroModel(t, rec, 2, true)
	base := time.Now()
	m = tick(t, m, base)

	// Work 1 (2s) -> Break 1 (1s) -> Work 2 (2s) -> Done, no input.
	m, _ = run(t, m, base, 6*time.Second, 100*time.Millisecond)

	if m.state != stateFinished {
		t.Fatalf("state = %v, want finished", m.state)
	}
	if m.Outcome() != OutcomeCompleted {
		t.Errorf("outcome = %v, want completed", m.Outcome())
	}

	workDone := rec.Count(notify.WorkComplete) + rec.Count(notify.WorkCompleteEgg)
	if workDone != 2 {
		t.Errorf("work completions notified = %d, want 2", workDone)
	}
	if rec.Count(notify.BreakComplete) != 1 {
		t.Errorf("break completions notified = %d, want 1", rec.Count(notify.BreakComplete))
	}
	if rec.Count(notify.PomodoroComplete) != 1 {
		t.Errorf("pomodoro completions notified = %d, want 1", rec.Count(notify.PomodoroComplete))
	}
}

func TestManualModeWaitsBetweenPhases(t *testing.T) {
	rec := &notify.Recorder{}
	m := newPomodoroModel(t, rec, 2, false)
	base := time.Now()
	m = tick(t, m, base)

	// Finish work 1; without autostart the model parks on the overdue
	// screen instead of starting the break.
	m, at := run(t, m, base, 2*time.Second+200*time.Millisecond, 100*time.Millisecond)
	if m.state != stateWaiting {
		t.Fatalf("state = %v, want waiting", m.state)
	}
	if !strings.Contains(m.View(), "Break Overdue:") {
		t.Errorf("overdue view mismatch: %q", m.View())
	}

	// Reminders fire on the configured cadence while parked, tagged
	// for the overdue break so the back-to-break sound plays.
	interval := time.Duration(config.Default().Reminder.PhaseInterval) * time.Second
	m, _ = run(t, m, at, 2*interval+time.Second, 30*time.Second)
	if got := rec.Count(notify.ReminderBreak); got < 2 {
		t.Errorf("break reminders = %d, want at least 2", got)
	}

	// The pause key withdraws pending popups and starts the break.
	m, _ = press(t, m, 'p')
	if m.state != statePhase {
		t.Fatalf("state after dismiss = %v, want phase", m.state)
	}
	if m.plan.State() != session.StateBreak {
		t.Errorf("plan state = %v, want break", m.plan.State())
	}
	if rec.Dismissals() != 1 {
		t.Errorf("dismissals = %d, want 1", rec.Dismissals())
	}
}

func TestAskAnotherAfterFinalWork(t *testing.T) {
	rec := &notify.Recorder{}
	m := newPomodoroModel(t, rec, 1, false)
	base := time.Now()
	m = tick(t, m, base)

	m, _ = run(t, m, base, 2*time.Second+200*time.Millisecond, 100*time.Millisecond)
	if m.state != stateAsking {
		t.Fatalf("state = %v, want asking", m.state)
	}
	if !strings.Contains(m.View(), "Add another run?") {
		t.Errorf("prompt view mismatch: %q", m.View())
	}

	// y extends the plan and goes straight into the break.
	m, _ = press(t, m, 'y')
	if m.plan.Sessions() != 2 || m.plan.State() != session.StateBreak {
		t.Fatalf("after y: sessions=%d state=%v, want 2/break", m.plan.Sessions(), m.plan.State())
	}
	if m.state != statePhase {
		t.Errorf("state after y = %v, want phase", m.state)
	}
}

func TestDeclineAnotherFinishes(t *testing.T) {
	rec := &notify.Recorder{}
	m := newPomodoroModel(t, rec, 1, false)
	base := time.Now()
	m = tick(t, m, base)

	m, _ = run(t, m, base, 2*time.Second+200*time.Millisecond, 100*time.Millisecond)
	if m.state != stateAsking {
		t.Fatalf("state = %v, want asking", m.state)
	}

	m, cmd := press(t, m, 'n')
	if m.state != stateFinished || m.Outcome() != OutcomeCompleted {
		t.Errorf("after n: state=%v outcome=%v, want finished/completed", m.state, m.Outcome())
	}
	if cmd == nil {
		t.Error("finishing should produce a quit command")
	}
	if rec.Count(notify.PomodoroComplete) != 1 {
		t.Errorf("pomodoro completions = %d, want 1", rec.Count(notify.PomodoroComplete))
	}
}

func TestCountdownCompletionEntersOverdueWait(t *testing.T) {
	rec := &notify.Recorder{}
	m := newCountdownModel(t, rec, 2*time.Second)
	base := time.Now()
	m = tick(t, m, base)

	m, _ = run(t, m, base, 2*time.Second+200*time.Millisecond, 100*time.Millisecond)
	if m.state != stateWaiting {
		t.Fatalf("state = %v, want waiting", m.state)
	}
	if rec.Count(notify.CountdownComplete) != 1 {
		t.Errorf("countdown completions = %d, want 1", rec.Count(notify.CountdownComplete))
	}

	// The parked countdown nags with its own reminder event.
	interval := time.Duration(config.Default().Reminder.CountdownInterval) * time.Second
	m, _ = run(t, m, base.Add(2*time.Second+200*time.Millisecond), 2*interval+time.Second, 10*time.Second)
	if got := rec.Count(notify.ReminderCountdown); got < 2 {
		t.Errorf("countdown reminders = %d, want at least 2", got)
	}

	m, cmd := press(t, m, 'p')
	if m.state != stateFinished || m.Outcome() != OutcomeCompleted {
		t.Errorf("after dismiss: state=%v outcome=%v", m.state, m.Outcome())
	}
	if cmd == nil {
		t.Error("dismissing the final wait should quit")
	}
}
