package cmd

import (
	"fmt"
	"strconv"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/engine"
	"github.com/nestegg-dev/nestegg/internal/model"

	"github.com/spf13/cobra"
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List savings challenges",
	RunE:  runChallenges,
}

var challengesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a challenge by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengesRm,
}

func init() {
	challengesCmd.AddCommand(challengesRmCmd)
	rootCmd.AddCommand(challengesCmd)
}

func runChallenges(_ *cobra.Command, _ []string) error {
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
	challenges, err := syncChallenges(s, pass)
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		fmt.Println("\n  No challenges yet. Start one with `nestegg start --list`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS CHALLENGES"))
	fmt.Println()

	rows := make([][]string, 0, len(challenges))
	for _, c := range challenges {
		pct := 0.0
		if c.TargetProgress > 0 {
			pct = c.CurrentProgress / c.TargetProgress
			if pct > 1 {
				pct = 1
			}
		}
		category := cli.Muted("—")
		if c.TargetCategory != "" {
			category = c.TargetCategory
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			string(c.Type),
			category,
			cli.RenderProgressBar(pct, 16),
			challengeProgressCell(c),
			challengeStatusCell(c),
			challengeWindowCell(c, pass),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Challenge", "Type", "Category", "", "Progress", "Status", "Window"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runChallengesRm(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid challenge id %q", args[0])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	challenges, err := s.Challenges()
	if err != nil {
		return err
	}
	var found *model.SavingsChallenge
	for i := range challenges {
		if challenges[i].ID == id {
			found = &challenges[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("no challenge with id %d", id)
	}

	if err := s.DeleteChallenge(id); err != nil {
		return fmt.Errorf("deleting challenge: %w", err)
	}
	fmt.Printf("\n  Deleted challenge %q\n", found.Name)
	return nil
}
