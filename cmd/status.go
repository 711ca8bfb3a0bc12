package cmd

import (
	"fmt"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/engine"
	"github.com/nestegg-dev/nestegg/internal/ledger"
	"github.com/nestegg-dev/nestegg/internal/model"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Overview of goals, challenges, and recent spending",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	now, err := effectiveNow()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	pass := engine.NewPass(now)
	pass.UpcomingCount = flagUpcoming

	goals, err := s.Goals()
	if err != nil {
		return err
	}
	challenges, err := syncChallenges(s, pass)
	if err != nil {
		return err
	}
	txs, err := s.Transactions()
	if err != nil {
		return err
	}

	if len(goals) == 0 && len(challenges) == 0 && len(txs) == 0 {
		fmt.Println("\n  Nothing here yet.")
		fmt.Println("  Run `nestegg setup` to get started, or `nestegg seed` for demo data.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("NESTEGG STATUS"))

	if len(goals) > 0 {
		fmt.Println()
		rows := make([][]string, 0, len(goals))
		for _, r := range pass.Goals(goals) {
			rows = append(rows, []string{
				r.Goal.Name,
				cli.RenderProgressBar(r.PercentComplete, 20),
				fmt.Sprintf("%s / %s", cli.FormatMoney(r.Goal.CurrentAmount), cli.FormatMoney(r.Goal.TargetAmount)),
				goalNextCell(r, pass),
				r.TimeRemaining.String(),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Goal", "Progress", "Saved", "Next", "Remaining"},
			Rows:    rows,
		}))
	}

	if len(challenges) > 0 {
		fmt.Println()
		rows := make([][]string, 0, len(challenges))
		for _, c := range challenges {
			rows = append(rows, []string{
				c.Name,
				string(c.Type),
				challengeProgressCell(c),
				challengeStatusCell(c),
				challengeWindowCell(c, pass),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Challenge", "Type", "Progress", "Status", "Window"},
			Rows:    rows,
		}))
	}

	// 30-day spend sparkline
	from := pass.Now.AddDate(0, 0, -29)
	daily := ledger.DailyExpenseTotals(txs, from, pass.Now)
	if hasNonZero(daily) {
		income, expense := ledger.Totals(ledger.FilterWindow(txs, from, pass.Now))
		fmt.Println()
		fmt.Printf("  Last 30 days   %s\n", cli.RenderSparkline(daily))
		fmt.Printf("  %s in, %s out, net %s\n",
			cli.Good(cli.FormatMoney(income)),
			cli.Bad(cli.FormatMoney(expense)),
			cli.FormatMoney(income-expense))
	}

	fmt.Println()
	return nil
}

func goalNextCell(r engine.GoalReport, pass engine.Pass) string {
	if !r.HasPlan {
		return cli.Muted("no plan")
	}
	if r.ContributedThisPeriod {
		return cli.Good("contributed")
	}
	if r.ContributionDue {
		return cli.Warn(fmt.Sprintf("%s due %s",
			cli.FormatMoney(r.Goal.Plan.Amount),
			cli.FormatDaysUntil(r.NextContribution, pass.Now)))
	}
	return fmt.Sprintf("%s %s",
		cli.FormatMoney(r.Goal.Plan.Amount),
		cli.FormatDaysUntil(r.NextContribution, pass.Now))
}

func challengeProgressCell(c model.SavingsChallenge) string {
	switch c.Type {
	case model.ChallengeNoSpend, model.ChallengeStreak:
		return fmt.Sprintf("%d / %d days", int(c.CurrentProgress), int(c.TargetProgress))
	default:
		return fmt.Sprintf("%s / %s", cli.FormatMoney(c.CurrentProgress), cli.FormatMoney(c.TargetProgress))
	}
}

func challengeStatusCell(c model.SavingsChallenge) string {
	switch c.Status {
	case model.StatusCompleted:
		return cli.Good("completed")
	case model.StatusFailed:
		return cli.Bad("failed")
	case model.StatusActive:
		return cli.Warn("active")
	default:
		return cli.Muted(string(c.Status))
	}
}

func challengeWindowCell(c model.SavingsChallenge, pass engine.Pass) string {
	if c.StartDate.IsZero() {
		return cli.Muted("—")
	}
	return fmt.Sprintf("%s – %s",
		cli.FormatDate(c.StartDate, pass.Now),
		cli.FormatDate(c.EndDate, pass.Now))
}

func hasNonZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return true
		}
	}
	return false
}
