// Package schedule computes execution instants for recurring payment conditions.
package schedule

import (
	"math"
	"time"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// MaxIntervalSeconds is the longest interval representable as a time.Duration
const MaxIntervalSeconds = math.MaxInt64 / int64(time.Second)

// NextRun returns the first execution instant strictly after ref.
// ok is false for one-time schedules and for malformed recurring ones,
// including intervals too long to represent.
func NextRun(s models.Schedule, ref time.Time) (time.Time, bool) {
	switch s.Frequency {
	case models.FrequencyInterval:
		if s.IntervalSeconds <= 0 || s.IntervalSeconds > MaxIntervalSeconds {
			return time.Time{}, false
		}
		next := ref.Add(time.Duration(s.IntervalSeconds) * time.Second)
		if !next.After(ref) {
			return time.Time{}, false
		}
		return next, true
	case models.FrequencyMonthly:
		return nextMonthly(clampDay(s.DayOfMonth), ref), true
	default:
		return time.Time{}, false
	}
}

// NextRunAfter advances from prev until the next instant strictly after now.
// The result keeps the cadence anchored to prev instead of drifting with tick latency.
func NextRunAfter(s models.Schedule, prev, now time.Time) (time.Time, bool) {
	next, ok := NextRun(s, prev)
	if !ok {
		return time.Time{}, false
	}
	if next.After(now) {
		return next, true
	}

	if s.Frequency == models.FrequencyInterval {
		step := time.Duration(s.IntervalSeconds) * time.Second
		missed := now.Sub(next)/step + 1
		return next.Add(missed * step), true
	}

	for !next.After(now) {
		next, _ = NextRun(s, next)
	}
	return next, true
}

// IsRecurring reports whether a payment with this schedule re-enters SCHEDULED after executing
func IsRecurring(s models.Schedule) bool {
	if s.Recurring {
		return true
	}
	return s.Frequency == models.FrequencyInterval || s.Frequency == models.FrequencyMonthly
}

// FrequencyWeight grades how often a schedule fires: once=1, daily=3, any other recurrence=2
func FrequencyWeight(s *models.Schedule) int {
	if s == nil || !IsRecurring(*s) {
		return 1
	}
	if s.Frequency == models.FrequencyInterval && s.IntervalSeconds == int64((24*time.Hour)/time.Second) {
		return 3
	}
	return 2
}

func clampDay(day int) int {
	if day < 1 {
		return 1
	}
	if day > 31 {
		return 31
	}
	return day
}

func nextMonthly(day int, ref time.Time) time.Time {
	year, month := ref.Year(), ref.Month()
	hour, minute, sec := ref.Clock()
	for {
		d := day
		if last := daysIn(year, month); d > last {
			d = last
		}
		candidate := time.Date(year, month, d, hour, minute, sec, 0, ref.Location())
		if candidate.After(ref) {
			return candidate
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
