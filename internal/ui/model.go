package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pomo-dev/pomo/internal/config"
	"github.com/pomo-dev/pomo/internal/log"
	"github.com/pomo-dev/pomo/internal/notify"
	"github.com/pomo-dev/pomo/internal/session"
	"github.com/pomo-dev/pomo/internal/timelex"
	"github.com/pomo-dev/pomo/internal/timer"
)

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeCancelled
)

// viewState is the model's position in the run.
type viewState int

const (
	statePhase     viewState = iota // a countdown is ticking
	stateWaiting                    // overdue screen, waiting for the pause key
	stateAsking                     // "add another run?" prompt
	stateFinished                   // natural completion
	stateCancelled                  // user cancelled
)

// tickMsg carries the wall-clock time of one render tick.
type tickMsg time.Time

// Model drives one timer invocation: either a single countdown or a full
// pomodoro plan. All pause/cancel mutations happen in key handling; tick
// handling and View only read those flags.
type Model struct {
	cfg      *config.Config
	keys     KeyMap
	notifier notify.Notifier
	logger   *log.Logger

	plan  *session.Plan // nil in countdown mode
	timer *timer.Timer
	bar   progress.Model

	state   viewState
	outcome Outcome
	err     error

	lastTick     time.Time
	now          time.Time
	waitStart    time.Time
	lastReminder time.Time
	waitMessage  string
	waitEvent    notify.Event
	waitInterval time.Duration
}

// NewCountdown builds a model for a single countdown of the given length.
func NewCountdown(cfg *config.Config, notifier notify.Notifier, logger *log.Logger, total time.Duration) (Model, error) {
	t, err := timer.New(total, timer.Countdown)
	if err != nil {
		return Model{}, err
	}
	m := newModel(cfg, notifier, logger)
	m.timer = t
	return m, nil
}

// NewPomodoro builds a model that runs the given plan to completion.
func NewPomodoro(cfg *config.Config, notifier notify.Notifier, logger *log.Logger, plan *session.Plan) (Model, error) {
	t, err := timer.New(plan.PhaseDuration(), plan.PhaseKind())
	if err != nil {
		return Model{}, err
	}
	m := newModel(cfg, notifier, logger)
	m.plan = plan
	m.timer = t
	return m, nil
}

func newModel(cfg *config.Config, notifier notify.Notifier, logger *log.Logger) Model {
	width := cfg.Display.BarWidth
	if width <= 0 {
		width = 20
	}
	return Model{
		cfg:      cfg,
		keys:     NewKeyMap(cfg),
		notifier: notifier,
		logger:   logger,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(width)),
	}
}

// tickInterval is the render cadence. A fraction of a second keeps the
// displayed remaining time accurate to whole seconds.
func (m Model) tickInterval() time.Duration {
	if ms := m.cfg.Display.TickMillis; ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return 100 * time.Millisecond
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init fires the start notification, prints the opening banner and
// starts the tick chain. The first phase timer was built by the
// constructor, so Init mutates nothing.
func (m Model) Init() tea.Cmd {
	var banner string
	if m.plan == nil {
		m.notifier.Notify(notify.CountdownStart, "Countdown timer started")
		m.logEvent(log.LogEvent{Event: log.EventPhaseStarted, Phase: m.timer.Kind().String()})
		banner = WorkHeaderStyle.Render("--- Countdown Timer ---")
	} else {
		m.notifier.Notify(notify.SessionStart, "New pomodoro session started. Let's get to work!")
		m.logEvent(log.LogEvent{
			Event:    log.EventSessionStarted,
			Sessions: m.plan.Sessions(),
			Command:  "pomodoro",
		})
		m.logEvent(log.LogEvent{Event: log.EventPhaseStarted, Phase: "work", Session: 1})
		banner = WorkHeaderStyle.Render(fmt.Sprintf("--- Work Session %d ---", m.plan.Current()))
	}
	return tea.Batch(tea.Println("\n"+banner+"\n"), m.tickCmd())
}

// Update handles key and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.InterruptMsg:
		// SIGINT from outside the terminal; same unwind as ctrl+c.
		return m.cancel()
	case tickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey is the input listener: the only place pause, autostart and
// cancel flags are written.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		return m.cancel()
	}

	switch m.state {
	case statePhase:
		switch {
		case key.Matches(msg, m.keys.Pause):
			if m.timer.Paused() {
				m.timer.Resume()
			} else {
				m.timer.Pause()
			}
		case key.Matches(msg, m.keys.Autostart):
			if m.plan != nil {
				m.plan.SetAutostart(!m.plan.Autostart())
			}
		}

	case stateWaiting:
		if key.Matches(msg, m.keys.Pause) {
			return m.dismissWait()
		}

	case stateAsking:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.plan.Extend()
			return m.startPhase()
		case key.Matches(msg, m.keys.No):
			m.plan.Advance()
			return m.finishPomodoro()
		}
	}

	return m, nil
}

// handleTick applies the wall-clock delta since the previous tick and
// reacts to phase completion. It never writes pause or cancel state.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var delta time.Duration
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.now = now

	switch m.state {
	case statePhase:
		if ev := m.timer.Tick(delta); ev != timer.EventNone {
			// The tick chain is renewed here and only here, so
			// key-triggered transitions never spawn a second chain.
			next, cmd := m.phaseComplete(ev)
			return next, tea.Batch(cmd, m.tickCmd())
		}

	case stateWaiting:
		if m.waitInterval > 0 && now.Sub(m.lastReminder) >= m.waitInterval {
			m.lastReminder = now
			overdue := int(now.Sub(m.waitStart).Minutes())
			m.notifier.Notify(m.waitEvent, fmt.Sprintf("Timer overdue by %d minutes", overdue))
		}

	case stateFinished, stateCancelled:
		return m, nil
	}

	return m, m.tickCmd()
}

// phaseComplete handles a countdown reaching zero.
func (m Model) phaseComplete(ev timer.Event) (tea.Model, tea.Cmd) {
	if m.plan == nil {
		return m.countdownComplete()
	}

	m.logEvent(log.LogEvent{
		Event:      log.EventPhaseComplete,
		Phase:      m.timer.Kind().String(),
		Session:    m.plan.Current(),
		DurationMs: m.timer.Total().Milliseconds(),
	})

	if m.plan.State() == session.StateWork {
		return m.workComplete(ev)
	}
	return m.breakComplete()
}

func (m Model) countdownComplete() (tea.Model, tea.Cmd) {
	m.logEvent(log.LogEvent{
		Event:      log.EventPhaseComplete,
		Phase:      "countdown",
		DurationMs: m.timer.Total().Milliseconds(),
	})
	m.notifier.Notify(notify.CountdownComplete, "Timer Complete!")

	banner := tea.Println("\n" + CompleteStyle.Render("*** Timer Complete! ***") + "\n")
	m.enterWait(
		fmt.Sprintf("Timer Complete! %s to exit. Overdue:", pressHint(m.cfg, "Press")),
		notify.ReminderCountdown,
		time.Duration(m.cfg.Reminder.CountdownInterval)*time.Second,
	)
	return m, banner
}

func (m Model) workComplete(ev timer.Event) (tea.Model, tea.Cmd) {
	event := notify.WorkComplete
	if ev == timer.EventEasterEgg {
		event = notify.WorkCompleteEgg
	}
	m.notifier.Notify(event, fmt.Sprintf("Work session %d complete. Time for a break!", m.plan.Current()))

	if m.plan.LastSession() {
		if m.plan.Autostart() {
			// Nothing left to confirm: the plan is done.
			m.plan.Advance()
			return m.finishPomodoro()
		}
		m.state = stateAsking
		return m, nil
	}

	m.plan.Advance()
	if m.plan.Autostart() {
		return m.startPhase()
	}
	m.enterWait(
		fmt.Sprintf("Work Session %d complete, %s for a break. Break Overdue:",
			m.plan.Current(), pressHint(m.cfg, "press")),
		notify.ReminderBreak,
		time.Duration(m.cfg.Reminder.PhaseInterval)*time.Second,
	)
	return m, nil
}

func (m Model) breakComplete() (tea.Model, tea.Cmd) {
	m.notifier.Notify(notify.BreakComplete, fmt.Sprintf("Break %d complete. Time for work!", m.plan.Current()))

	done := m.plan.Current()
	m.plan.Advance()
	if m.plan.Autostart() {
		return m.startPhase()
	}
	m.enterWait(
		fmt.Sprintf("Break %d complete. To start the next work session, %s. Work Overdue:",
			done, pressHint(m.cfg, "press")),
		notify.ReminderWork,
		time.Duration(m.cfg.Reminder.PhaseInterval)*time.Second,
	)
	return m, nil
}

// enterWait parks the model on an overdue screen until the pause key.
// event names the reminder fired while the screen sits unacknowledged.
func (m *Model) enterWait(message string, event notify.Event, interval time.Duration) {
	m.state = stateWaiting
	m.waitMessage = message
	m.waitStart = m.now
	m.lastReminder = m.now
	m.waitEvent = event
	m.waitInterval = interval
}

// dismissWait leaves the overdue screen: for a countdown that is the
// end of the run, for a pomodoro the next phase starts. Any popups
// still pending are withdrawn along with the screen.
func (m Model) dismissWait() (tea.Model, tea.Cmd) {
	m.notifier.Dismiss()
	if m.plan == nil {
		m.state = stateFinished
		m.outcome = OutcomeCompleted
		return m, tea.Quit
	}
	return m.startPhase()
}

// startPhase builds the timer for the plan's current phase and prints
// its banner.
func (m Model) startPhase() (tea.Model, tea.Cmd) {
	t, err := timer.New(m.plan.PhaseDuration(), m.plan.PhaseKind())
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.timer = t
	m.state = statePhase

	var banner string
	if m.plan.State() == session.StateBreak {
		banner = BreakHeaderStyle.Render(fmt.Sprintf("--- Break %d ---", m.plan.Current()))
	} else {
		banner = WorkHeaderStyle.Render(fmt.Sprintf("--- Work Session %d ---", m.plan.Current()))
	}
	m.logEvent(log.LogEvent{
		Event:   log.EventPhaseStarted,
		Phase:   m.timer.Kind().String(),
		Session: m.plan.Current(),
	})
	return m, tea.Println("\n" + banner + "\n")
}

func (m Model) finishPomodoro() (tea.Model, tea.Cmd) {
	m.notifier.Notify(notify.PomodoroComplete, "Pomodoro complete!")
	m.logEvent(log.LogEvent{Event: log.EventSessionComplete, Sessions: m.plan.Sessions()})
	m.state = stateFinished
	m.outcome = OutcomeCompleted
	return m, tea.Sequence(
		tea.Println("\n"+CompleteStyle.Render("*** Pomodoro Complete! ***")+"\n"),
		tea.Quit,
	)
}

// cancel unwinds the whole run. No completion notification fires.
func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.timer.Cancel()
	if m.plan != nil {
		m.plan.Cancel()
	}
	m.logEvent(log.LogEvent{Event: log.EventPhaseCancelled, Phase: m.timer.Kind().String()})
	m.state = stateCancelled
	m.outcome = OutcomeCancelled
	return m, tea.Sequence(
		tea.Println("\n"+CancelledStyle.Render("Timer Cancelled.")+"\n"),
		tea.Quit,
	)
}

// View renders the live line for the current state. It is read-only with
// respect to all timer and plan state.
func (m Model) View() string {
	switch m.state {
	case statePhase:
		return m.phaseView()
	case stateWaiting:
		elapsed := m.now.Sub(m.waitStart)
		return fmt.Sprintf("%s %s", m.waitMessage, timelex.FormatOverdue(elapsed))
	case stateAsking:
		return "All work sessions complete. Add another run? y/n: "
	}
	return ""
}

func (m Model) phaseView() string {
	clock := ClockStyle.Render(timelex.FormatClock(m.timer.Remaining()))
	bar := m.bar.ViewAs(m.timer.Fraction())

	var hint string
	if m.timer.Paused() {
		hint = fmt.Sprintf("PAUSED - %s to continue", pressHint(m.cfg, "press"))
	} else {
		hint = fmt.Sprintf("%s for pause", pressHint(m.cfg, "press"))
	}

	line := fmt.Sprintf("    %s %s %s", clock, bar, hint)
	if m.plan != nil {
		if m.plan.Autostart() {
			line += " | Auto:" + AutoOnStyle.Render("ON")
		} else {
			line += " | Auto:" + AutoOffStyle.Render("OFF")
		}
	}
	return line
}

// Outcome reports how the run ended. Valid after the program exits.
func (m Model) Outcome() Outcome { return m.outcome }

// Err returns an internal error that aborted the run, if any.
func (m Model) Err() error { return m.err }

// logEvent appends to the event log, ignoring logging failures.
func (m Model) logEvent(ev log.LogEvent) {
	if m.logger == nil {
		return
	}
	_ = m.logger.Append(ev)
}

// pressHint renders "press P"-style hints with the configured pause key
// highlighted.
func pressHint(cfg *config.Config, verb string) string {
	keyName := cfg.Keys.Pause
	if keyName == "" {
		keyName = "p"
	}
	return verb + " " + KeyHintStyle.Render(keyName)
}
