// Package engine runs one evaluation pass over a user's goals and
// challenges. A pass captures a single timestamp and a single ledger
// snapshot so every derived value within it is mutually consistent; the
// engine holds no state between passes and performs no I/O.
package engine

import (
	"time"

	"github.com/nestegg-dev/nestegg/internal/challenge"
	"github.com/nestegg-dev/nestegg/internal/estimate"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/schedule"
)

// DefaultUpcoming is how many future contribution dates a goal report
// carries when the caller doesn't say otherwise.
const DefaultUpcoming = 3

// GoalReport is the derived, read-only view of one goal.
type GoalReport struct {
	Goal                  model.Goal
	PercentComplete       float64 // 0..1, clamped
	ContributionDue       bool
	ContributedThisPeriod bool
	ContributionsNeeded   int
	HasPlan               bool // false when ContributionsNeeded is meaningless
	NextContribution      time.Time
	Upcoming              []time.Time
	TimeRemaining         estimate.TimeRemaining
}

// Pass evaluates goals and challenges against a fixed now.
type Pass struct {
	Now           time.Time
	UpcomingCount int
}

// NewPass captures now (truncated to its calendar day) for one evaluation.
func NewPass(now time.Time) Pass {
	return Pass{Now: model.Day(now), UpcomingCount: DefaultUpcoming}
}

// Goal derives the full report for one goal.
func (p Pass) Goal(g model.Goal) GoalReport {
	r := GoalReport{
		Goal:          g,
		TimeRemaining: estimate.ForGoal(g, p.Now),
	}

	if g.TargetAmount > 0 {
		pct := g.CurrentAmount / g.TargetAmount
		if pct > 1 {
			pct = 1
		}
		if pct < 0 {
			pct = 0
		}
		r.PercentComplete = pct
	}

	r.ContributionsNeeded, r.HasPlan = schedule.ContributionsNeeded(g)
	if !r.HasPlan {
		return r
	}

	r.ContributionDue = schedule.IsContributionDue(g.Plan, p.Now)
	r.ContributedThisPeriod = schedule.HasContributionInCurrentPeriod(g.Plan, g.History, p.Now)

	count := p.UpcomingCount
	if count <= 0 {
		count = DefaultUpcoming
	}
	if occ, err := schedule.UpcomingOccurrences(g.Plan, p.Now, count); err == nil && len(occ) > 0 {
		r.Upcoming = occ
		r.NextContribution = occ[0]
	}

	return r
}

// Goals derives reports for all goals.
func (p Pass) Goals(goals []model.Goal) []GoalReport {
	reports := make([]GoalReport, 0, len(goals))
	for _, g := range goals {
		reports = append(reports, p.Goal(g))
	}
	return reports
}

// Challenges re-evaluates every challenge against the ledger snapshot and
// returns the updated records plus whether any of them changed (so the
// caller knows a persist is warranted).
func (p Pass) Challenges(challenges []model.SavingsChallenge, txs []model.Transaction) ([]model.SavingsChallenge, bool) {
	updated := make([]model.SavingsChallenge, 0, len(challenges))
	changed := false
	for _, c := range challenges {
		next := challenge.Evaluate(c, txs, p.Now)
		if next.CurrentProgress != c.CurrentProgress || next.Status != c.Status {
			changed = true
		}
		updated = append(updated, next)
	}
	return updated, changed
}
