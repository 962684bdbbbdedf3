// Package timer implements the countdown engine for a single phase.
// The engine holds no clock of its own: the caller drives it with
// elapsed-time deltas, which keeps it independent of the UI's tick
// cadence and trivially testable.
package timer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidDuration reports a non-positive phase duration.
var ErrInvalidDuration = errors.New("phase duration must be positive")

// Kind identifies what a phase is for. It decides the display color and
// which completion notification fires.
type Kind int

const (
	Work Kind = iota
	Break
	Countdown
)

// String returns the phase name for display and log events.
func (k Kind) String() string {
	switch k {
	case Work:
		return "work"
	case Break:
		return "break"
	default:
		return "countdown"
	}
}

// Event is the engine's verdict after a tick.
type Event int

const (
	// EventNone means the phase is still running (or paused/cancelled).
	EventNone Event = iota
	// EventComplete fires exactly once, when remaining time reaches zero.
	EventComplete
	// EventEasterEgg replaces EventComplete on a small fraction of work
	// phase completions.
	EventEasterEgg
)

// easterEggChance is the per-completion probability of EventEasterEgg on
// a work phase.
const easterEggChance = 0.1

// Timer is the state of one countdown phase. It is not safe for
// concurrent use; the UI loop owns it and is its single writer.
type Timer struct {
	kind      Kind
	total     time.Duration
	remaining time.Duration
	paused    bool
	cancelled bool
	done      bool
	randFn    func() float64
}

// Option configures a Timer at construction.
type Option func(*Timer)

// WithRand replaces the random source used for the easter egg pick.
// Tests use this to make completions deterministic.
func WithRand(fn func() float64) Option {
	return func(t *Timer) { t.randFn = fn }
}

// New creates a Timer for a phase of the given length and kind.
func New(total time.Duration, kind Kind, opts ...Option) (*Timer, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, total)
	}
	t := &Timer{
		kind:      kind,
		total:     total,
		remaining: total,
		randFn:    rand.Float64,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Tick applies elapsed wall-clock time to the countdown. While paused,
// cancelled or already complete it changes nothing and returns EventNone.
// Remaining time is clamped at zero; the completion event is returned
// exactly once.
func (t *Timer) Tick(elapsed time.Duration) Event {
	if t.paused || t.cancelled || t.done {
		return EventNone
	}
	if elapsed < 0 {
		return EventNone
	}

	t.remaining -= elapsed
	if t.remaining > 0 {
		return EventNone
	}

	t.remaining = 0
	t.done = true
	if t.kind == Work && t.randFn() < easterEggChance {
		return EventEasterEgg
	}
	return EventComplete
}

// Pause freezes the countdown. Idempotent; a no-op on a terminal timer.
func (t *Timer) Pause() {
	if t.cancelled || t.done {
		return
	}
	t.paused = true
}

// Resume unfreezes the countdown. Idempotent; a no-op on a terminal timer.
func (t *Timer) Resume() {
	if t.cancelled || t.done {
		return
	}
	t.paused = false
}

// Cancel terminates the phase. Irreversible: no later Tick, Pause or
// Resume changes observable state, and no completion event ever fires.
func (t *Timer) Cancel() {
	t.cancelled = true
}

// Kind returns the phase kind.
func (t *Timer) Kind() Kind { return t.kind }

// Total returns the phase length.
func (t *Timer) Total() time.Duration { return t.total }

// Remaining returns the time left on the countdown.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Fraction returns progress in [0, 1]: 0 untouched, 1 complete.
func (t *Timer) Fraction() float64 {
	return 1 - float64(t.remaining)/float64(t.total)
}

// Paused reports whether the countdown is frozen.
func (t *Timer) Paused() bool { return t.paused }

// Cancelled reports whether the phase was cancelled.
func (t *Timer) Cancelled() bool { return t.cancelled }

// Done reports whether the countdown ran to zero.
func (t *Timer) Done() bool { return t.done }
