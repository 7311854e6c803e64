package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// IsOpenAt reports whether the restaurant is open at the given instant.
// The manual IsOpen override wins, a weekday with no hours entry counts as
// closed, and a range whose close bound is smaller than its open bound
// (e.g. "18:00 - 00:00") wraps past midnight into the next day.
func (r *Restaurant) IsOpenAt(t time.Time) bool {
	if !r.IsOpen {
		return false
	}

	hours, ok := r.OpeningHours[t.Weekday().String()]
	if !ok {
		return false
	}

	open, close, err := parseHoursRange(hours)
	if err != nil {
		return false
	}

	now := t.Hour()*60 + t.Minute()
	switch {
	case open < close:
		return now >= open && now <= close
	case open > close:
		return now >= open || now <= close
	default:
		// zero-length window
		return false
	}
}

func (r *Restaurant) OpenNow() bool {
	return r.IsOpenAt(time.Now())
}

// parseHoursRange parses "HH:MM - HH:MM" into minutes since midnight.
func parseHoursRange(hours string) (open, close int, err error) {
	parts := strings.SplitN(hours, "-", 2)
	if len(parts) != 2 {
		return 0, 0, errInvalidHours
	}

	open, err = parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	close, err = parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return open, close, nil
}

func parseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, errInvalidHours
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errInvalidHours
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errInvalidHours
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errInvalidHours
	}
	return hour*60 + minute, nil
}

var errInvalidHours = errors.New("invalid opening hours range")
