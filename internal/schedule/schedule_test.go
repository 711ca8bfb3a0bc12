package schedule

import (
	"testing"
	"time"

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

func weeklyPlan(t *testing.T, amount float64, last string) *model.ContributionPlan {
	t.Helper()
	p := &model.ContributionPlan{Amount: amount, Frequency: model.FrequencyWeekly}
	if last != "" {
		p.LastContributionDate = mustDay(t, last)
	}
	return p
}

func TestIsContributionDue(t *testing.T) {
	now := mustDay(t, "2024-06-10") // Monday

	tests := []struct {
		name string
		plan *model.ContributionPlan
		want bool
	}{
		{"due in 3 days", weeklyPlan(t, 50, "2024-06-06"), true},  // next = Jun 13
		{"due tomorrow", weeklyPlan(t, 50, "2024-06-04"), true},   // next = Jun 11
		{"not due yet", weeklyPlan(t, 50, "2024-06-09"), false},   // next = Jun 16
		{"nil plan", nil, false},
		{"zero amount", weeklyPlan(t, 0, "2024-06-06"), false},
		{"no frequency", &model.ContributionPlan{Amount: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContributionDue(tt.plan, now); got != tt.want {
				t.Errorf("IsContributionDue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasContributionInCurrentPeriod(t *testing.T) {
	now := mustDay(t, "2024-06-12") // Wednesday; weekly period starts Sun Jun 9

	history := func(days ...string) []model.ContributionHistoryEntry {
		var h []model.ContributionHistoryEntry
		for _, d := range days {
			h = append(h, model.ContributionHistoryEntry{Date: mustDay(t, d), Amount: 50})
		}
		return h
	}

	tests := []struct {
		name    string
		freq    model.Frequency
		history []model.ContributionHistoryEntry
		want    bool
	}{
		{"weekly inside period", model.FrequencyWeekly, history("2024-06-10"), true},
		{"weekly on period start", model.FrequencyWeekly, history("2024-06-09"), true},
		{"weekly before period", model.FrequencyWeekly, history("2024-06-08"), false},
		{"weekly only latest counts", model.FrequencyWeekly, history("2024-06-10", "2024-06-01"), false},
		{"empty history", model.FrequencyWeekly, nil, false},
		// Scenario D: biweekly, last contribution 10 days ago, within the
		// rolling 14-day window.
		{"biweekly rolling window", model.FrequencyBiweekly, history("2024-06-02"), true},
		{"biweekly outside window", model.FrequencyBiweekly, history("2024-05-27"), false},
		{"monthly same month", model.FrequencyMonthly, history("2024-06-01"), true},
		{"monthly previous month", model.FrequencyMonthly, history("2024-05-31"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &model.ContributionPlan{Amount: 50, Frequency: tt.freq}
			if got := HasContributionInCurrentPeriod(plan, tt.history, now); got != tt.want {
				t.Errorf("HasContributionInCurrentPeriod = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContributionsNeeded(t *testing.T) {
	// Scenario A: monthly $100 plan, target $1000, current $200 -> 8.
	goal := model.Goal{
		CurrentAmount: 200,
		TargetAmount:  1000,
		Plan:          &model.ContributionPlan{Amount: 100, Frequency: model.FrequencyMonthly},
	}
	n, ok := ContributionsNeeded(goal)
	if !ok || n != 8 {
		t.Errorf("ContributionsNeeded = (%d, %v), want (8, true)", n, ok)
	}

	// Fractional remainder rounds up.
	goal.Plan.Amount = 300
	if n, _ := ContributionsNeeded(goal); n != 3 {
		t.Errorf("ContributionsNeeded = %d, want 3 (ceil of 800/300)", n)
	}

	// Already reached clamps to zero.
	goal.CurrentAmount = 1200
	if n, ok := ContributionsNeeded(goal); !ok || n != 0 {
		t.Errorf("ContributionsNeeded = (%d, %v), want (0, true)", n, ok)
	}

	// No plan short-circuits instead of dividing by zero.
	goal.Plan = nil
	if _, ok := ContributionsNeeded(goal); ok {
		t.Error("expected ok=false for goal without a plan")
	}
}

func TestUpcomingOccurrences(t *testing.T) {
	now := mustDay(t, "2024-06-10")
	plan := weeklyPlan(t, 50, "2024-06-06")

	got, err := UpcomingOccurrences(plan, now, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2024-06-13", "2024-06-20", "2024-06-27"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if !got[i].Equal(mustDay(t, w)) {
			t.Errorf("occurrence[%d] = %s, want %s", i, model.FormatDay(got[i]), w)
		}
	}

	if occ, _ := UpcomingOccurrences(nil, now, 3); occ != nil {
		t.Error("nil plan should yield no occurrences")
	}
}

func TestUpcomingOccurrences_MonthlyClamp(t *testing.T) {
	now := mustDay(t, "2024-01-31")
	plan := &model.ContributionPlan{
		Amount:               100,
		Frequency:            model.FrequencyMonthly,
		LastContributionDate: mustDay(t, "2024-01-31"),
	}

	got, err := UpcomingOccurrences(plan, now, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2024-02-29", "2024-03-29", "2024-04-29"}
	for i, w := range want {
		if !got[i].Equal(mustDay(t, w)) {
			t.Errorf("occurrence[%d] = %s, want %s", i, model.FormatDay(got[i]), w)
		}
	}
}
