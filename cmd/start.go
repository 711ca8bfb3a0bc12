package cmd

import (
	"fmt"

	"github.com/nestegg-dev/nestegg/internal/challenge"
	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagStartList     bool
	flagStartCategory string
	flagStartTarget   string
	flagStartDays     int
)

var startCmd = &cobra.Command{
	Use:   "start [template]",
	Short: "Start a savings challenge from a template",
	Long:  "Start a savings challenge from a built-in template. Use --list to see available templates.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&flagStartList, "list", "l", false, "List available templates")
	startCmd.Flags().StringVarP(&flagStartCategory, "category", "c", "", "Override the template's spending category")
	startCmd.Flags().StringVarP(&flagStartTarget, "target", "t", "", "Override the template's target amount")
	startCmd.Flags().IntVar(&flagStartDays, "days", 0, "Override the template's duration in days")
	rootCmd.AddCommand(startCmd)
}

func runStart(_ *cobra.Command, args []string) error {
	if flagStartList || len(args) == 0 {
		return listTemplates()
	}

	now, err := effectiveNow()
	if err != nil {
		return err
	}

	tpl, err := challenge.TemplateByKey(args[0])
	if err != nil {
		return fmt.Errorf("%w (try `nestegg start --list`)", err)
	}

	if flagStartCategory != "" {
		tpl.TargetCategory = flagStartCategory
	}
	if flagStartTarget != "" {
		target, err := parseAmount(flagStartTarget)
		if err != nil {
			return err
		}
		tpl.TargetAmount = target
	}
	if flagStartDays > 0 {
		tpl.DurationDays = flagStartDays
	}
	if tpl.Type == model.ChallengeReduceCategory && tpl.TargetCategory == "" {
		return fmt.Errorf("template %q needs a spending category (use --category)", tpl.Key)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	c := challenge.Start(tpl, now)
	saved, err := s.SaveChallenge(c)
	if err != nil {
		return fmt.Errorf("saving challenge: %w", err)
	}

	fmt.Printf("\n  Started %q (id %d): %s through %s\n",
		saved.Name, saved.ID,
		cli.FormatDate(saved.StartDate, now),
		cli.FormatDate(saved.EndDate, now))
	return nil
}

func listTemplates() error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("CHALLENGE TEMPLATES"))
	fmt.Println()

	rows := make([][]string, 0, len(challenge.Templates))
	for _, tpl := range challenge.Templates {
		rows = append(rows, []string{
			tpl.Key,
			string(tpl.Type),
			fmt.Sprintf("%dd", tpl.DurationDays),
			tpl.Description,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Template", "Type", "Length", "Description"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  Start one with `nestegg start <template>`.")
	fmt.Println()
	return nil
}
