// Package schedule answers contribution questions for a goal's plan: when
// the next contribution falls, whether one is due soon, whether the current
// period is already covered, and how many contributions remain.
//
// All functions are pure queries; "now" is always an explicit parameter.
package schedule

import (
	"math"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/recurrence"
)

// DueSoonDays is how far ahead of the next occurrence a contribution is
// considered due.
const DueSoonDays = 3

// NextContribution returns the next occurrence on the plan's lattice,
// anchored at the last contribution date (or now when there is none).
func NextContribution(plan *model.ContributionPlan, now time.Time) (time.Time, error) {
	return recurrence.NextOccurrence(plan.LastContributionDate, plan.Frequency, now)
}

// IsContributionDue reports whether the next occurrence is within
// DueSoonDays of now. A missing or invalid plan is never due.
func IsContributionDue(plan *model.ContributionPlan, now time.Time) bool {
	if plan == nil || plan.Amount <= 0 || plan.Frequency == "" {
		return false
	}
	next, err := NextContribution(plan, now)
	if err != nil {
		return false
	}
	return !next.After(model.Day(now).AddDate(0, 0, DueSoonDays))
}

// HasContributionInCurrentPeriod reports whether the most recent history
// entry falls within the current period [periodStart, now]. Empty history
// or a plan without a frequency is never covered.
func HasContributionInCurrentPeriod(plan *model.ContributionPlan, history []model.ContributionHistoryEntry, now time.Time) bool {
	if plan == nil || plan.Frequency == "" || len(history) == 0 {
		return false
	}
	latest := model.Day(history[len(history)-1].Date)
	start := recurrence.CurrentPeriodStart(plan.Frequency, now)
	return !latest.Before(start) && !latest.After(model.Day(now))
}

// ContributionsNeeded returns how many plan-sized contributions remain to
// reach the goal's target. ok is false when the goal has no positive
// contribution amount.
func ContributionsNeeded(goal model.Goal) (n int, ok bool) {
	if goal.Plan == nil || goal.Plan.Amount <= 0 {
		return 0, false
	}
	remaining := goal.TargetAmount - goal.CurrentAmount
	if remaining <= 0 {
		return 0, true
	}
	return int(math.Ceil(remaining / goal.Plan.Amount)), true
}

// UpcomingOccurrences returns the next count occurrence dates, each seeding
// the following lookup so the dates walk the lattice forward.
func UpcomingOccurrences(plan *model.ContributionPlan, now time.Time, count int) ([]time.Time, error) {
	if plan == nil || plan.Frequency == "" || count <= 0 {
		return nil, nil
	}

	occurrences := make([]time.Time, 0, count)
	cursor := now
	anchor := plan.LastContributionDate
	for i := 0; i < count; i++ {
		next, err := recurrence.NextOccurrence(anchor, plan.Frequency, cursor)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, next)
		anchor = next
		cursor = next
	}
	return occurrences, nil
}
