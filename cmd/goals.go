package cmd

import (
	"fmt"
	"time"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/engine"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/recurrence"

	"github.com/spf13/cobra"
)

var (
	flagGoalTarget     string
	flagGoalCurrent    string
	flagGoalAmount     string
	flagGoalFrequency  string
	flagGoalTargetDate string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List savings goals",
	RunE:  runGoals,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a savings goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsAdd,
}

var goalsRmCmd = &cobra.Command{
	Use:   "rm <goal>",
	Short: "Delete a goal by id or name",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsRm,
}

func init() {
	goalsAddCmd.Flags().StringVarP(&flagGoalTarget, "target", "t", "", "Target amount (required)")
	goalsAddCmd.Flags().StringVar(&flagGoalCurrent, "current", "", "Starting balance")
	goalsAddCmd.Flags().StringVarP(&flagGoalAmount, "amount", "a", "", "Planned contribution amount")
	goalsAddCmd.Flags().StringVarP(&flagGoalFrequency, "frequency", "f", "", "Contribution frequency: weekly, biweekly, monthly")
	goalsAddCmd.Flags().StringVar(&flagGoalTargetDate, "target-date", "", "Deadline (YYYY-MM-DD)")

	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsRmCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
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
	if len(goals) == 0 {
		fmt.Println("\n  No goals yet. Create one with `nestegg goals add`.")
		return nil
	}

	pass := engine.NewPass(now)
	pass.UpcomingCount = flagUpcoming

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOALS"))
	fmt.Println()

	rows := make([][]string, 0, len(goals))
	for _, r := range pass.Goals(goals) {
		plan := cli.Muted("—")
		if r.HasPlan {
			plan = fmt.Sprintf("%s %s", cli.FormatMoney(r.Goal.Plan.Amount), r.Goal.Plan.Frequency)
		}
		left := cli.Muted("—")
		if r.HasPlan && !r.Goal.Reached() {
			left = fmt.Sprintf("%d more", r.ContributionsNeeded)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Goal.ID),
			r.Goal.Name,
			cli.RenderProgressBar(r.PercentComplete, 20),
			fmt.Sprintf("%s / %s", cli.FormatMoney(r.Goal.CurrentAmount), cli.FormatMoney(r.Goal.TargetAmount)),
			plan,
			left,
			r.TimeRemaining.String(),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Goal", "Progress", "Saved", "Plan", "Contributions", "Remaining"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runGoalsAdd(_ *cobra.Command, args []string) error {
	now, err := effectiveNow()
	if err != nil {
		return err
	}

	if flagGoalTarget == "" {
		return fmt.Errorf("--target is required")
	}
	target, err := parseAmount(flagGoalTarget)
	if err != nil {
		return err
	}

	g := model.Goal{
		Name:         args[0],
		TargetAmount: target,
		CreatedAt:    now,
	}

	if flagGoalCurrent != "" {
		current, err := parseAmount(flagGoalCurrent)
		if err != nil {
			return err
		}
		g.CurrentAmount = current
	}

	if flagGoalTargetDate != "" {
		d, err := time.Parse(model.DayFormat, flagGoalTargetDate)
		if err != nil {
			return fmt.Errorf("invalid --target-date %q (want YYYY-MM-DD)", flagGoalTargetDate)
		}
		g.TargetDate = d
	}

	// --amount and --frequency come as a pair
	if (flagGoalAmount == "") != (flagGoalFrequency == "") {
		return fmt.Errorf("--amount and --frequency must be set together")
	}
	if flagGoalAmount != "" {
		amount, err := parseAmount(flagGoalAmount)
		if err != nil {
			return err
		}
		freq := model.Frequency(flagGoalFrequency)
		switch freq {
		case model.FrequencyWeekly, model.FrequencyBiweekly, model.FrequencyMonthly:
		default:
			return fmt.Errorf("invalid --frequency %q (want weekly, biweekly, or monthly)", flagGoalFrequency)
		}

		next, err := recurrence.NextOccurrence(now, freq, now)
		if err != nil {
			return err
		}
		g.Plan = &model.ContributionPlan{
			Amount:               amount,
			Frequency:            freq,
			NextContributionDate: next,
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	saved, err := s.SaveGoal(g)
	if err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}

	fmt.Printf("\n  Created goal %q (id %d), target %s", saved.Name, saved.ID, cli.FormatMoney(saved.TargetAmount))
	if saved.Plan != nil {
		fmt.Printf(", %s %s starting %s",
			cli.FormatMoney(saved.Plan.Amount), saved.Plan.Frequency,
			cli.FormatDate(saved.Plan.NextContributionDate, now))
	}
	fmt.Println()
	return nil
}

func runGoalsRm(_ *cobra.Command, args []string) error {
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

	if err := s.DeleteGoal(g.ID); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	fmt.Printf("\n  Deleted goal %q\n", g.Name)
	return nil
}
