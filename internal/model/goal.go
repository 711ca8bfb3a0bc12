package model

import "time"

// Frequency is the recurrence interval of a contribution plan.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// IntervalDays returns the fixed day interval for week-based frequencies.
// Monthly returns 0: it advances by calendar months, not a fixed day count.
func (f Frequency) IntervalDays() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyBiweekly:
		return 14
	default:
		return 0
	}
}

// ContributionPlan describes how a goal is meant to be funded.
type ContributionPlan struct {
	Amount               float64 // > 0 when the plan is set
	Frequency            Frequency
	LastContributionDate time.Time // zero if no contribution yet
	NextContributionDate time.Time // zero if never computed
}

// ContributionHistoryEntry records one applied contribution. Entries are
// append-only and chronological in practice.
type ContributionHistoryEntry struct {
	Date   time.Time
	Amount float64
}

// Goal is a savings goal. The evaluation engine only derives read-only
// views from it; CurrentAmount is mutated by the contribution-recording
// adapter, never by the engine.
type Goal struct {
	ID            int64
	Name          string
	CurrentAmount float64
	TargetAmount  float64
	Plan          *ContributionPlan // nil when no plan is set
	TargetDate    time.Time         // zero when no deadline is set
	History       []ContributionHistoryEntry
	CreatedAt     time.Time
}

// LatestContribution returns the most recent history entry, if any.
func (g Goal) LatestContribution() (ContributionHistoryEntry, bool) {
	if len(g.History) == 0 {
		return ContributionHistoryEntry{}, false
	}
	return g.History[len(g.History)-1], true
}

// Reached reports whether the goal has hit its target.
func (g Goal) Reached() bool {
	return g.CurrentAmount >= g.TargetAmount
}
