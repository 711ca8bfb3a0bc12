package engine

import (
	"testing"
	"time"

	"github.com/nestegg-dev/nestegg/internal/estimate"
	"github.com/nestegg-dev/nestegg/internal/model"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DayFormat, s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}
	return d
}

func TestPass_GoalReport(t *testing.T) {
	now := mustDay(t, "2024-06-10")
	g := model.Goal{
		Name:          "Emergency fund",
		CurrentAmount: 200,
		TargetAmount:  1000,
		Plan: &model.ContributionPlan{
			Amount:               100,
			Frequency:            model.FrequencyMonthly,
			LastContributionDate: mustDay(t, "2024-06-08"),
		},
		History: []model.ContributionHistoryEntry{
			{Date: mustDay(t, "2024-06-08"), Amount: 100},
		},
	}

	r := NewPass(now).Goal(g)

	if !r.HasPlan || r.ContributionsNeeded != 8 {
		t.Errorf("ContributionsNeeded = (%d, %v), want (8, true)", r.ContributionsNeeded, r.HasPlan)
	}
	if r.PercentComplete != 0.2 {
		t.Errorf("PercentComplete = %.2f, want 0.20", r.PercentComplete)
	}
	if !r.ContributedThisPeriod {
		t.Error("ContributedThisPeriod = false, want true (contributed Jun 8, month started Jun 1)")
	}
	if want := mustDay(t, "2024-07-08"); !r.NextContribution.Equal(want) {
		t.Errorf("NextContribution = %s, want 2024-07-08", model.FormatDay(r.NextContribution))
	}
	if len(r.Upcoming) != DefaultUpcoming {
		t.Errorf("len(Upcoming) = %d, want %d", len(r.Upcoming), DefaultUpcoming)
	}
	if r.ContributionDue {
		t.Error("ContributionDue = true, want false (next is ~4 weeks out)")
	}
	if r.TimeRemaining.Kind != estimate.Months || r.TimeRemaining.Months != 8 {
		t.Errorf("TimeRemaining = %+v, want 8 months", r.TimeRemaining)
	}
}

func TestPass_GoalWithoutPlan(t *testing.T) {
	r := NewPass(mustDay(t, "2024-06-10")).Goal(model.Goal{TargetAmount: 500})
	if r.HasPlan {
		t.Error("HasPlan = true for plan-less goal")
	}
	if r.ContributionDue || r.ContributedThisPeriod || len(r.Upcoming) != 0 {
		t.Errorf("plan-less goal report carries schedule data: %+v", r)
	}
	if r.TimeRemaining.Kind != estimate.NoPlan {
		t.Errorf("TimeRemaining.Kind = %v, want NoPlan", r.TimeRemaining.Kind)
	}
}

// One pass must use a single consistent now: the due flag and the next
// occurrence come from the same timestamp.
func TestPass_ConsistentNow(t *testing.T) {
	g := model.Goal{
		TargetAmount: 1000,
		Plan: &model.ContributionPlan{
			Amount:               50,
			Frequency:            model.FrequencyWeekly,
			LastContributionDate: mustDay(t, "2024-06-03"),
		},
	}

	// Next occurrence Jun 10; due window is 3 days.
	r := NewPass(mustDay(t, "2024-06-08")).Goal(g)
	if !r.ContributionDue {
		t.Error("ContributionDue = false, want true two days before occurrence")
	}
	if want := mustDay(t, "2024-06-10"); !r.NextContribution.Equal(want) {
		t.Errorf("NextContribution = %s, want 2024-06-10", model.FormatDay(r.NextContribution))
	}
}

func TestPass_Challenges(t *testing.T) {
	now := mustDay(t, "2024-06-20")
	txs := []model.Transaction{
		{Date: mustDay(t, "2024-06-02"), Amount: 500, Type: model.TransactionIncome, Category: "salary"},
		{Date: mustDay(t, "2024-06-05"), Amount: 300, Type: model.TransactionExpense, Category: "rent"},
	}
	cs := []model.SavingsChallenge{
		{
			Type:           model.ChallengeSaveAmount,
			StartDate:      mustDay(t, "2024-06-01"),
			EndDate:        mustDay(t, "2024-07-01"),
			TargetProgress: 500,
			Status:         model.StatusActive,
		},
		{
			Type:            model.ChallengeNoSpend,
			StartDate:       mustDay(t, "2024-05-01"),
			EndDate:         mustDay(t, "2024-05-31"),
			TargetProgress:  30,
			CurrentProgress: 30,
			Status:          model.StatusCompleted,
		},
	}

	updated, changed := NewPass(now).Challenges(cs, txs)
	if !changed {
		t.Error("changed = false, want true (active challenge progressed)")
	}
	// Scenario B: income 500, expense 300 -> progress 200.
	if updated[0].CurrentProgress != 200 {
		t.Errorf("save_amount progress = %.0f, want 200", updated[0].CurrentProgress)
	}
	// Terminal record passes through untouched.
	if updated[1] != cs[1] {
		t.Errorf("terminal challenge modified: %+v", updated[1])
	}

	// A second pass over the already-updated set reports no change.
	if _, changed := NewPass(now).Challenges(updated, txs); changed {
		t.Error("changed = true on idempotent re-evaluation")
	}
}
