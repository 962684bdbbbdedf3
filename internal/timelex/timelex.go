// Package timelex parses duration tokens like "25", "90s", "1.5m" or "2h"
// and formats durations for the timer display.
package timelex

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration reports a duration token that is empty, non-numeric
// or non-positive.
var ErrInvalidDuration = errors.New("invalid duration")

// Parse converts a duration token into a time.Duration. The token is an
// optional decimal number followed by an optional unit suffix (s, m or h).
// A bare number means minutes, so "25" and "25m" are both 25 minutes.
// Decimal values are allowed: "1.5m" is 90 seconds.
func Parse(token string) (time.Duration, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("%w: empty token", ErrInvalidDuration)
	}

	unit := time.Minute
	num := token
	switch token[len(token)-1] {
	case 's':
		unit = time.Second
		num = token[:len(token)-1]
	case 'm':
		unit = time.Minute
		num = token[:len(token)-1]
	case 'h':
		unit = time.Hour
		num = token[:len(token)-1]
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidDuration, token)
	}

	return time.Duration(value * float64(unit)), nil
}

// FormatClock renders a duration as MM:SS, rounded up so a countdown shows
// "00:01" until it actually hits zero. Hours roll into the minutes field.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// FormatOverdue renders an elapsed duration as HH:MM:SS for the overdue
// wait screens.
func FormatOverdue(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
