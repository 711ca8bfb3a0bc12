package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nestegg.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DayFormat, s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}
	return d
}

func TestTransactionRoundTrip(t *testing.T) {
	s := openTemp(t)

	in := model.Transaction{
		Date:     mustDay(t, "2024-06-01"),
		Amount:   42.50,
		Type:     model.TransactionExpense,
		Category: "dining",
		Note:     "lunch",
	}
	saved, err := s.AddTransaction(in)
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	txs, err := s.Transactions()
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("len = %d, want 1", len(txs))
	}
	got := txs[0]
	if !got.Date.Equal(in.Date) || got.Amount != in.Amount || got.Type != in.Type ||
		got.Category != in.Category || got.Note != in.Note {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestTransactions_OrderedByDate(t *testing.T) {
	s := openTemp(t)
	for _, day := range []string{"2024-06-10", "2024-06-01", "2024-06-05"} {
		if _, err := s.AddTransaction(model.Transaction{
			Date: mustDay(t, day), Amount: 1, Type: model.TransactionExpense,
		}); err != nil {
			t.Fatal(err)
		}
	}

	txs, err := s.Transactions()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(txs); i++ {
		if txs[i].Date.Before(txs[i-1].Date) {
			t.Fatalf("transactions out of order at %d: %+v", i, txs)
		}
	}
}

func TestGoalRoundTrip(t *testing.T) {
	s := openTemp(t)

	in := model.Goal{
		Name:          "Emergency fund",
		CurrentAmount: 250,
		TargetAmount:  1000,
		Plan: &model.ContributionPlan{
			Amount:               50,
			Frequency:            model.FrequencyWeekly,
			LastContributionDate: mustDay(t, "2024-06-03"),
			NextContributionDate: mustDay(t, "2024-06-10"),
		},
		TargetDate: mustDay(t, "2024-12-31"),
		History: []model.ContributionHistoryEntry{
			{Date: mustDay(t, "2024-05-27"), Amount: 50},
			{Date: mustDay(t, "2024-06-03"), Amount: 50},
		},
	}

	saved, err := s.SaveGoal(in)
	if err != nil {
		t.Fatalf("SaveGoal: %v", err)
	}

	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("len = %d, want 1", len(goals))
	}

	g := goals[0]
	if g.ID != saved.ID || g.Name != in.Name || g.CurrentAmount != 250 {
		t.Errorf("goal mismatch: %+v", g)
	}
	if g.Plan == nil {
		t.Fatal("plan not loaded")
	}
	if g.Plan.Amount != 50 || g.Plan.Frequency != model.FrequencyWeekly {
		t.Errorf("plan mismatch: %+v", g.Plan)
	}
	if !g.Plan.LastContributionDate.Equal(mustDay(t, "2024-06-03")) {
		t.Errorf("LastContributionDate = %s", model.FormatDay(g.Plan.LastContributionDate))
	}
	if len(g.History) != 2 || g.History[1].Amount != 50 ||
		!g.History[1].Date.Equal(mustDay(t, "2024-06-03")) {
		t.Errorf("history mismatch: %+v", g.History)
	}
	if !g.TargetDate.Equal(mustDay(t, "2024-12-31")) {
		t.Errorf("TargetDate = %s", model.FormatDay(g.TargetDate))
	}
}

func TestGoalWithoutPlan(t *testing.T) {
	s := openTemp(t)
	if _, err := s.SaveGoal(model.Goal{Name: "Someday", TargetAmount: 5000}); err != nil {
		t.Fatal(err)
	}

	goals, err := s.Goals()
	if err != nil {
		t.Fatal(err)
	}
	if goals[0].Plan != nil {
		t.Errorf("expected nil plan, got %+v", goals[0].Plan)
	}
	if !goals[0].TargetDate.IsZero() {
		t.Errorf("expected zero TargetDate, got %s", model.FormatDay(goals[0].TargetDate))
	}
}

func TestGoalUpdateRewritesHistory(t *testing.T) {
	s := openTemp(t)
	g, err := s.SaveGoal(model.Goal{Name: "Trip", TargetAmount: 800})
	if err != nil {
		t.Fatal(err)
	}

	g.CurrentAmount = 100
	g.History = append(g.History, model.ContributionHistoryEntry{
		Date: mustDay(t, "2024-06-01"), Amount: 100,
	})
	if _, err := s.SaveGoal(g); err != nil {
		t.Fatal(err)
	}

	goals, err := s.Goals()
	if err != nil {
		t.Fatal(err)
	}
	if len(goals) != 1 {
		t.Fatalf("update created a duplicate: %d goals", len(goals))
	}
	if goals[0].CurrentAmount != 100 || len(goals[0].History) != 1 {
		t.Errorf("update not applied: %+v", goals[0])
	}
}

func TestChallengeRoundTripAndBatchSave(t *testing.T) {
	s := openTemp(t)

	c, err := s.SaveChallenge(model.SavingsChallenge{
		Name:           "Save $500",
		Type:           model.ChallengeSaveAmount,
		StartDate:      mustDay(t, "2024-06-01"),
		EndDate:        mustDay(t, "2024-07-01"),
		DurationDays:   30,
		TargetProgress: 500,
		Status:         model.StatusActive,
	})
	if err != nil {
		t.Fatalf("SaveChallenge: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	// Write back an evaluation result.
	c.CurrentProgress = 200
	c.Status = model.StatusActive
	if err := s.SaveChallenges([]model.SavingsChallenge{c}); err != nil {
		t.Fatalf("SaveChallenges: %v", err)
	}

	cs, err := s.Challenges()
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 1 {
		t.Fatalf("len = %d, want 1", len(cs))
	}
	got := cs[0]
	if got.CurrentProgress != 200 || got.Status != model.StatusActive {
		t.Errorf("write-back not applied: %+v", got)
	}
	if got.Type != model.ChallengeSaveAmount || !got.EndDate.Equal(mustDay(t, "2024-07-01")) {
		t.Errorf("challenge mismatch: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	s := openTemp(t)
	g, _ := s.SaveGoal(model.Goal{Name: "x", TargetAmount: 1})
	c, _ := s.SaveChallenge(model.SavingsChallenge{
		Name: "y", Type: model.ChallengeNoSpend,
		StartDate: mustDay(t, "2024-06-01"), EndDate: mustDay(t, "2024-06-08"),
		DurationDays: 7, TargetProgress: 7, Status: model.StatusActive,
	})

	if err := s.DeleteGoal(g.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteChallenge(c.ID); err != nil {
		t.Fatal(err)
	}

	goals, _ := s.Goals()
	cs, _ := s.Challenges()
	if len(goals) != 0 || len(cs) != 0 {
		t.Errorf("delete left records: %d goals, %d challenges", len(goals), len(cs))
	}
}
