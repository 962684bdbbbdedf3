// Package session holds the pomodoro plan state machine that sequences
// work and break phases. The plan never touches the clock or the
// terminal; the UI runs one countdown per phase and asks the plan what
// comes next.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/pomo-dev/pomo/internal/timer"
)

// ErrInvalidSessions reports a non-positive session count.
var ErrInvalidSessions = errors.New("session count must be at least 1")

// State is the orchestrator's position in the pomodoro sequence.
type State int

const (
	StateWork State = iota
	StateBreak
	StateDone
	StateCancelled
)

// String returns the state name for display and log events.
func (s State) String() string {
	switch s {
	case StateWork:
		return "work"
	case StateBreak:
		return "break"
	case StateDone:
		return "done"
	default:
		return "cancelled"
	}
}

// Plan sequences work and break phases for one pomodoro invocation.
// A plan of N sessions runs N work phases with a break between
// consecutive sessions: there is no break after the final work phase
// unless the plan is extended.
type Plan struct {
	work      time.Duration
	brk       time.Duration
	sessions  int
	autostart bool
	current   int // 1-based session index
	state     State
}

// NewPlan creates a plan of the given phase lengths and session count,
// positioned at the first work phase.
func NewPlan(work, brk time.Duration, sessions int, autostart bool) (*Plan, error) {
	if sessions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSessions, sessions)
	}
	return &Plan{
		work:      work,
		brk:       brk,
		sessions:  sessions,
		autostart: autostart,
		current:   1,
		state:     StateWork,
	}, nil
}

// State returns the current position in the sequence.
func (p *Plan) State() State { return p.state }

// Current returns the 1-based index of the session in progress.
func (p *Plan) Current() int { return p.current }

// Sessions returns the planned session count, including extensions.
func (p *Plan) Sessions() int { return p.sessions }

// Autostart reports whether phases advance without manual confirmation.
func (p *Plan) Autostart() bool { return p.autostart }

// SetAutostart flips the autostart policy. The UI exposes this as a live
// toggle during any phase.
func (p *Plan) SetAutostart(on bool) { p.autostart = on }

// PhaseKind returns the timer kind for the current phase. Only valid in
// StateWork and StateBreak.
func (p *Plan) PhaseKind() timer.Kind {
	if p.state == StateBreak {
		return timer.Break
	}
	return timer.Work
}

// PhaseDuration returns the length of the current phase. Only valid in
// StateWork and StateBreak.
func (p *Plan) PhaseDuration() time.Duration {
	if p.state == StateBreak {
		return p.brk
	}
	return p.work
}

// LastSession reports whether the session in progress is the final one.
func (p *Plan) LastSession() bool { return p.current >= p.sessions }

// Advance moves past a completed phase. A finished work phase leads to a
// break when sessions remain, or to done after the last one; a finished
// break starts the next session's work phase. Terminal states never move.
func (p *Plan) Advance() {
	switch p.state {
	case StateWork:
		if p.current < p.sessions {
			p.state = StateBreak
		} else {
			p.state = StateDone
		}
	case StateBreak:
		p.current++
		p.state = StateWork
	}
}

// Extend adds one more session to the plan. Called when the user opts to
// keep going after the final work phase: the plan re-enters the break
// state so the usual break -> work transition runs the extra session.
func (p *Plan) Extend() {
	if p.state == StateCancelled || p.state == StateBreak {
		return
	}
	p.sessions++
	p.state = StateBreak
}

// Cancel aborts the whole sequence. Terminal and irreversible; no
// further phases run and no completion notifications fire.
func (p *Plan) Cancel() {
	p.state = StateCancelled
}
