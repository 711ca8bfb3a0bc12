package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/engine"

	"github.com/spf13/cobra"
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Upcoming contribution dates across all goals",
	RunE:  runUpcoming,
}

func init() {
	rootCmd.AddCommand(upcomingCmd)
}

type upcomingRow struct {
	date   time.Time
	goal   string
	amount float64
	due    bool
}

func runUpcoming(_ *cobra.Command, _ []string) error {
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

	pass := engine.NewPass(now)
	pass.UpcomingCount = flagUpcoming

	var rows []upcomingRow
	for _, r := range pass.Goals(goals) {
		if !r.HasPlan {
			continue
		}
		for i, d := range r.Upcoming {
			rows = append(rows, upcomingRow{
				date:   d,
				goal:   r.Goal.Name,
				amount: r.Goal.Plan.Amount,
				due:    i == 0 && r.ContributionDue,
			})
		}
	}

	if len(rows) == 0 {
		fmt.Println("\n  No contribution plans set up.")
		fmt.Println("  Add one with `nestegg goals add --amount --frequency`.")
		return nil
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].date.Equal(rows[j].date) {
			return rows[i].date.Before(rows[j].date)
		}
		return rows[i].goal < rows[j].goal
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle("UPCOMING CONTRIBUTIONS"))
	fmt.Println()

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		when := cli.FormatDaysUntil(r.date, pass.Now)
		if r.due {
			when = cli.Warn(when + "  (due)")
		}
		out = append(out, []string{
			cli.FormatDate(r.date, pass.Now),
			when,
			r.goal,
			cli.FormatMoney(r.amount),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "When", "Goal", "Amount"},
		Rows:    out,
	}))
	fmt.Println()
	return nil
}
