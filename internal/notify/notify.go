// Package notify dispatches sound and desktop notifications for timer
// transitions. Delivery is best effort: the timer's correctness never
// depends on a notification landing, so every failure is logged and
// swallowed.
package notify

import "sync"

// Event tags the timer transitions a Notifier can announce.
type Event string

const (
	SessionStart      Event = "session_start"
	WorkComplete      Event = "work_complete"
	WorkCompleteEgg   Event = "work_complete_egg"
	BreakComplete     Event = "break_complete"
	PomodoroComplete  Event = "pomodoro_complete"
	CountdownStart    Event = "countdown_start"
	CountdownComplete Event = "countdown_complete"
	ReminderBreak     Event = "reminder_break"
	ReminderWork      Event = "reminder_work"
	ReminderCountdown Event = "reminder_countdown"
)

// Notifier announces a timer transition. Implementations must not block
// the caller for long and must not surface delivery failures. Dismiss
// withdraws any popups still pending, so acknowledging an overdue phase
// also clears its critical notification.
type Notifier interface {
	Notify(event Event, message string)
	Dismiss()
}

// Recorder is a Notifier that collects calls for tests.
type Recorder struct {
	mu         sync.Mutex
	calls      []RecordedCall
	dismissals int
}

// RecordedCall is one Notify invocation seen by a Recorder.
type RecordedCall struct {
	Event   Event
	Message string
}

// Notify records the call.
func (r *Recorder) Notify(event Event, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, RecordedCall{Event: event, Message: message})
}

// Dismiss records the dismissal.
func (r *Recorder) Dismiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dismissals++
}

// Calls returns a copy of everything recorded so far.
func (r *Recorder) Calls() []RecordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RecordedCall(nil), r.calls...)
}

// Count returns how many times event was notified.
func (r *Recorder) Count(event Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Event == event {
			n++
		}
	}
	return n
}

// Dismissals returns how many times Dismiss was called.
func (r *Recorder) Dismissals() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dismissals
}

// Discard is a Notifier that drops everything.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(Event, string) {}

// Dismiss does nothing.
func (Discard) Dismiss() {}
