package model

import (
	"fmt"
	"time"
)

// FormatHour renders a whole-hour slot as "HH:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// SinceMidnight returns t's time-of-day as a duration from midnight.
func SinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// HourOfDay converts a whole-hour slot to its duration from midnight.
func HourOfDay(hour int) time.Duration {
	return time.Duration(hour) * time.Hour
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
