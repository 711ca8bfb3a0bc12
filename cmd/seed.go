package cmd

import (
	"fmt"
	"os"

	"github.com/nestegg-dev/nestegg/internal/challenge"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/recurrence"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data to explore the app",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	now, err := effectiveNow()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Seeding demo data...\n")
	}

	// Three weeks of everyday transactions. Amount/category pairs cycle
	// so the category sums and streaks have some texture.
	spends := []struct {
		daysAgo  int
		amount   float64
		category string
		note     string
	}{
		{21, 64.20, "groceries", "weekly shop"},
		{20, 12.50, "dining", "lunch out"},
		{19, 8.75, "transport", ""},
		{17, 42.00, "dining", "dinner with friends"},
		{16, 58.90, "groceries", ""},
		{14, 15.00, "entertainment", "movie"},
		{12, 9.99, "subscriptions", "streaming"},
		{11, 71.35, "groceries", ""},
		{9, 18.40, "dining", ""},
		{7, 6.50, "transport", ""},
		{5, 66.10, "groceries", "weekly shop"},
		{3, 22.00, "dining", "takeout"},
		{1, 11.25, "transport", ""},
	}
	for _, sp := range spends {
		_, err := s.AddTransaction(model.Transaction{
			Date:     now.AddDate(0, 0, -sp.daysAgo),
			Amount:   sp.amount,
			Type:     model.TransactionExpense,
			Category: sp.category,
			Note:     sp.note,
		})
		if err != nil {
			return err
		}
	}
	for _, daysAgo := range []int{18, 4} {
		_, err := s.AddTransaction(model.Transaction{
			Date:     now.AddDate(0, 0, -daysAgo),
			Amount:   1500,
			Type:     model.TransactionIncome,
			Category: "salary",
			Note:     "paycheck",
		})
		if err != nil {
			return err
		}
	}

	// Two goals: one with a plan mid-flight, one deadline-only.
	anchor := now.AddDate(0, 0, -10)
	next, err := recurrence.NextOccurrence(anchor, model.FrequencyBiweekly, now)
	if err != nil {
		return err
	}
	if _, err := s.SaveGoal(model.Goal{
		Name:          "Emergency Fund",
		CurrentAmount: 1200,
		TargetAmount:  5000,
		Plan: &model.ContributionPlan{
			Amount:               250,
			Frequency:            model.FrequencyBiweekly,
			LastContributionDate: anchor,
			NextContributionDate: next,
		},
		History: []model.ContributionHistoryEntry{
			{Date: now.AddDate(0, 0, -38), Amount: 250},
			{Date: now.AddDate(0, 0, -24), Amount: 250},
			{Date: anchor, Amount: 250},
		},
		CreatedAt: now.AddDate(0, 0, -45),
	}); err != nil {
		return err
	}
	if _, err := s.SaveGoal(model.Goal{
		Name:          "Summer Trip",
		CurrentAmount: 300,
		TargetAmount:  1800,
		TargetDate:    now.AddDate(0, 5, 0),
		CreatedAt:     now.AddDate(0, 0, -14),
	}); err != nil {
		return err
	}

	// Two active challenges, started partway through.
	dining, err := challenge.TemplateByKey("dining-diet")
	if err != nil {
		return err
	}
	c := challenge.Start(dining, now.AddDate(0, 0, -10))
	if _, err := s.SaveChallenge(c); err != nil {
		return err
	}

	streak, err := challenge.TemplateByKey("tracking-streak-14")
	if err != nil {
		return err
	}
	c = challenge.Start(streak, now.AddDate(0, 0, -5))
	if _, err := s.SaveChallenge(c); err != nil {
		return err
	}

	fmt.Println("\n  Demo data loaded. Try `nestegg status` or `nestegg tui`.")
	return nil
}
