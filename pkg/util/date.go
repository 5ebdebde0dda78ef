package util

import (
	"fmt"
	"time"
)

// HourLabel formats an hour of day as "HH:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", ((hour%24)+24)%24)
}

// StartOfHour truncates t to the hour in its own location.
func StartOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// TrailingHours returns the hours of day covering the n hours that end at
// the hour of now, oldest first.
func TrailingHours(now time.Time, n int) []int {
	if n <= 0 {
		return nil
	}
	current := now.Hour()
	hours := make([]int, n)
	for i := 0; i < n; i++ {
		hours[i] = (((current - (n - 1) + i) % 24) + 24) % 24
	}
	return hours
}
