package cmd

import (
	"fmt"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/schedule"

	"github.com/spf13/cobra"
)

var flagLogNote string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a transaction or goal contribution",
}

var logExpenseCmd = &cobra.Command{
	Use:   "expense <amount> <category>",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runLogExpense,
}

var logIncomeCmd = &cobra.Command{
	Use:   "income <amount> [category]",
	Short: "Record income",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runLogIncome,
}

var logContributionCmd = &cobra.Command{
	Use:     "contribution <goal> [amount]",
	Aliases: []string{"contrib"},
	Short:   "Record a contribution toward a goal",
	Long:    "Record a contribution toward a goal. Amount defaults to the goal's planned contribution.",
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runLogContribution,
}

func init() {
	logCmd.PersistentFlags().StringVar(&flagLogNote, "note", "", "Free-form note")
	logCmd.AddCommand(logExpenseCmd)
	logCmd.AddCommand(logIncomeCmd)
	logCmd.AddCommand(logContributionCmd)
	rootCmd.AddCommand(logCmd)
}

func runLogExpense(_ *cobra.Command, args []string) error {
	return logTransaction(model.TransactionExpense, args)
}

func runLogIncome(_ *cobra.Command, args []string) error {
	return logTransaction(model.TransactionIncome, args)
}

func logTransaction(kind model.TransactionType, args []string) error {
	now, err := effectiveNow()
	if err != nil {
		return err
	}

	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	category := ""
	if len(args) > 1 {
		category = args[1]
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	tx, err := s.AddTransaction(model.Transaction{
		Date:     now,
		Amount:   amount,
		Type:     kind,
		Category: category,
		Note:     flagLogNote,
	})
	if err != nil {
		return fmt.Errorf("saving transaction: %w", err)
	}

	label := "expense"
	if kind == model.TransactionIncome {
		label = "income"
	}
	fmt.Printf("\n  Logged %s of %s", label, cli.FormatMoney(tx.Amount))
	if tx.Category != "" {
		fmt.Printf(" (%s)", tx.Category)
	}
	fmt.Printf(" on %s\n", cli.FormatDate(tx.Date, now))
	return nil
}

func runLogContribution(_ *cobra.Command, args []string) error {
	now, err := effectiveNow()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	goals, err := s.Goals()
	if err != nil {
		return err
	}
	g, err := findGoal(goals, args[0])
	if err != nil {
		return err
	}

	var amount float64
	switch {
	case len(args) > 1:
		amount, err = parseAmount(args[1])
		if err != nil {
			return err
		}
	case g.Plan != nil && g.Plan.Amount > 0:
		amount = g.Plan.Amount
	default:
		return fmt.Errorf("goal %q has no contribution plan, pass an amount explicitly", g.Name)
	}

	g.CurrentAmount += amount
	g.History = append(g.History, model.ContributionHistoryEntry{Date: now, Amount: amount})
	if g.Plan != nil {
		g.Plan.LastContributionDate = now
		next, err := schedule.NextContribution(g.Plan, now)
		if err != nil {
			return err
		}
		g.Plan.NextContributionDate = next
	}

	saved, err := s.SaveGoal(g)
	if err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}

	fmt.Printf("\n  Added %s to %q, now at %s / %s",
		cli.FormatMoney(amount), saved.Name,
		cli.FormatMoney(saved.CurrentAmount), cli.FormatMoney(saved.TargetAmount))
	if saved.Reached() {
		fmt.Printf("  %s", cli.Good("goal reached!"))
	} else if saved.Plan != nil {
		fmt.Printf("  (next: %s)", cli.FormatDaysUntil(saved.Plan.NextContributionDate, now))
	}
	fmt.Println()
	return nil
}
