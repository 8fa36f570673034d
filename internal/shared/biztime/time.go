// Package biztime centralizes time handling for the service.
// All storage and transport use UTC; billing period boundaries are
// calendar dates computed in UTC.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// TodayUTC returns the current date in UTC, truncated to midnight.
func TodayUTC() time.Time {
	now := NowUTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DateFromUnix converts a Unix timestamp to a UTC date truncated to midnight.
// Stripe reports billing period boundaries as epoch seconds.
func DateFromUnix(sec int64) time.Time {
	t := time.Unix(sec, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths adds n calendar months to t, preserving the UTC date semantics.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}
