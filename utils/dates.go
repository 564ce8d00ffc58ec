// utils/dates.go
package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// NormalizeDate trims s and checks it is a calendar date in YYYY-MM-DD form.
// Bookings store the date as text, so this form also sorts chronologically.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("date is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("date %q must be YYYY-MM-DD", s)
	}
	return t.Format(DateLayout), nil
}

// NormalizeClock accepts an empty value or a wall-clock time in HH:MM form.
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return "", fmt.Errorf("time %q must be HH:MM", s)
	}
	return t.Format(ClockLayout), nil
}
