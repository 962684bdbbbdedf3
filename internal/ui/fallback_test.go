package ui

import (
	"context"
	"testing"
	"time"

	"github.com/pomo-dev/pomo/internal/timer"
)

func TestCountdownPlainHonorsCancelledContext(t *testing.T) {
	tm, err := timer.New(time.Minute, timer.Countdown)
	if err != nil {
		t.Fatalf("timer.New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if ev := countdownPlain(ctx, tm); ev != timer.EventNone {
		t.Errorf("countdownPlain = %v for a dead context, want EventNone", ev)
	}
	if tm.Done() {
		t.Error("cancelled countdown must not complete")
	}
}

func TestCountdownPlainReportsEasterEgg(t *testing.T) {
	tm, err := timer.New(time.Second, timer.Work, timer.WithRand(func() float64 { return 0 }))
	if err != nil {
		t.Fatalf("timer.New failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if ev := countdownPlain(ctx, tm); ev != timer.EventEasterEgg {
		t.Errorf("countdownPlain = %v, want EventEasterEgg", ev)
	}
	if !tm.Done() {
		t.Error("timer should be done after completion")
	}
}
