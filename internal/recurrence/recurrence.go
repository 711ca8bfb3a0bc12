// Package recurrence computes occurrence dates on a weekly, biweekly, or
// monthly lattice anchored at a reference date.
//
// Note the two deliberately different notions of "biweekly": NextOccurrence
// walks an anchored 14-day lattice, while CurrentPeriodStart uses a rolling
// 14-day window ending at now. The dual definition matches the product
// behavior and must not be unified silently.
package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// maxIterations bounds the NextOccurrence loop. Realistic anchors converge
// in a handful of steps; hitting the bound means a corrupt anchor.
const maxIterations = 10000

// ErrRunawayRecurrence is returned when NextOccurrence exceeds its
// iteration bound.
var ErrRunawayRecurrence = errors.New("recurrence: iteration bound exceeded")

// NextOccurrence returns the first date on the recurrence lattice strictly
// after now. The lattice is anchor+7k days (weekly), anchor+14k days
// (biweekly), or anchor advanced by k calendar months (monthly, day-of-month
// clamped to the target month's length). A zero anchor is treated as now.
func NextOccurrence(anchor time.Time, freq model.Frequency, now time.Time) (time.Time, error) {
	day := model.Day(now)
	start := model.Day(anchor)
	if anchor.IsZero() {
		start = day
	}

	if freq == model.FrequencyMonthly {
		for k := 0; k <= maxIterations; k++ {
			candidate := addMonthsClamped(start, k)
			if candidate.After(day) {
				return candidate, nil
			}
		}
		return time.Time{}, fmt.Errorf("monthly anchor %s: %w", model.FormatDay(anchor), ErrRunawayRecurrence)
	}

	interval := freq.IntervalDays()
	if interval <= 0 {
		return time.Time{}, fmt.Errorf("unknown frequency %q", freq)
	}

	candidate := start
	for i := 0; i <= maxIterations; i++ {
		if candidate.After(day) {
			return candidate, nil
		}
		candidate = candidate.AddDate(0, 0, interval)
	}
	return time.Time{}, fmt.Errorf("%s anchor %s: %w", freq, model.FormatDay(anchor), ErrRunawayRecurrence)
}

// CurrentPeriodStart returns the start of the period containing now:
// weekly = the most recent Sunday, biweekly = now minus 14 days (rolling,
// not anchored), monthly = the first day of now's month.
func CurrentPeriodStart(freq model.Frequency, now time.Time) time.Time {
	day := model.Day(now)
	switch freq {
	case model.FrequencyWeekly:
		return day.AddDate(0, 0, -int(day.Weekday()))
	case model.FrequencyBiweekly:
		return day.AddDate(0, 0, -14)
	case model.FrequencyMonthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// addMonthsClamped advances anchor by k calendar months, keeping the
// anchor's day-of-month and clamping to the last day of shorter months.
// Each step clamps from the anchor's day, not the previous occurrence, so
// an anchor on the 31st lands on Feb 28 and then Mar 31 again.
func addMonthsClamped(anchor time.Time, k int) time.Time {
	y := anchor.Year()
	m := int(anchor.Month()) - 1 + k
	y += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)

	d := anchor.Day()
	if last := daysInMonth(y, month); d > last {
		d = last
	}
	return time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
