// Package estimate projects a human-meaningful "time to completion" for a
// savings goal. An explicit contribution plan is considered more
// informative than a bare deadline, so plan-based projection wins when
// both are present.
package estimate

import (
	"fmt"
	"math"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// weeksPerMonth converts weekly contribution periods to months.
const weeksPerMonth = 4.33

// Kind classifies a TimeRemaining value.
type Kind int

const (
	// Reached means the goal is already at or past its target.
	Reached Kind = iota
	// Weeks is a plan-based projection under one month.
	Weeks
	// Months is a plan-based projection under a year, or a deadline-based
	// projection of 30 days or more.
	Months
	// YearsMonths is a plan-based projection of a year or more.
	YearsMonths
	// Days is a deadline-based projection under 30 days.
	Days
	// DeadlinePassed means the target date is today or in the past.
	DeadlinePassed
	// NoPlan means the goal has neither a contribution plan nor a deadline.
	NoPlan
)

// TimeRemaining is the bucketed projection for one goal.
type TimeRemaining struct {
	Kind   Kind
	Weeks  int
	Months int
	Years  int
	Days   int
}

// ForGoal computes the projection for g as of now.
func ForGoal(g model.Goal, now time.Time) TimeRemaining {
	if g.Reached() {
		return TimeRemaining{Kind: Reached}
	}

	if g.Plan != nil && g.Plan.Amount > 0 {
		return fromPlan(g)
	}

	if !g.TargetDate.IsZero() {
		return fromDeadline(g.TargetDate, now)
	}

	return TimeRemaining{Kind: NoPlan}
}

func fromPlan(g model.Goal) TimeRemaining {
	remaining := g.TargetAmount - g.CurrentAmount
	periods := remaining / g.Plan.Amount

	var months float64
	switch g.Plan.Frequency {
	case model.FrequencyWeekly:
		months = periods / weeksPerMonth
	case model.FrequencyBiweekly:
		months = periods / 2
	default: // monthly
		months = periods
	}

	switch {
	case months < 1:
		return TimeRemaining{Kind: Weeks, Weeks: ceilGuarded(months * weeksPerMonth)}
	case months < 12:
		return TimeRemaining{Kind: Months, Months: ceilGuarded(months)}
	default:
		years := int(months) / 12
		rem := months - float64(years)*12
		return TimeRemaining{Kind: YearsMonths, Years: years, Months: ceilGuarded(rem)}
	}
}

// ceilGuarded rounds up, absorbing float noise from the divide-then-multiply
// round trip through weeksPerMonth (3 periods must give 3 weeks, not 4).
func ceilGuarded(x float64) int {
	return int(math.Ceil(x - 1e-9))
}

func fromDeadline(target, now time.Time) TimeRemaining {
	days := int(math.Ceil(model.Day(target).Sub(model.Day(now)).Hours() / 24))
	switch {
	case days <= 0:
		return TimeRemaining{Kind: DeadlinePassed}
	case days < 30:
		return TimeRemaining{Kind: Days, Days: days}
	default:
		return TimeRemaining{Kind: Months, Months: int(math.Ceil(float64(days) / 30))}
	}
}

// String renders the projection for display.
func (tr TimeRemaining) String() string {
	switch tr.Kind {
	case Reached:
		return "reached"
	case Weeks:
		return fmt.Sprintf("~%s", plural(tr.Weeks, "week"))
	case Months:
		return fmt.Sprintf("~%s", plural(tr.Months, "month"))
	case YearsMonths:
		if tr.Months == 0 {
			return fmt.Sprintf("~%s", plural(tr.Years, "year"))
		}
		return fmt.Sprintf("~%s %s", plural(tr.Years, "year"), plural(tr.Months, "month"))
	case Days:
		return plural(tr.Days, "day")
	case DeadlinePassed:
		return "deadline passed"
	default:
		return "no plan set"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
