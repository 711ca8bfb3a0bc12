package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/config"
	"github.com/nestegg-dev/nestegg/internal/engine"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagDate     string
	flagQuiet    bool
	flagUpcoming int
)

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Savings goals and challenges tracker",
	Long:  "Track savings goals, contribution schedules, and gamified savings challenges.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(applyConfig)

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Evaluate as of this date (YYYY-MM-DD, default: today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().IntVarP(&flagUpcoming, "upcoming", "u", 0, "Future contribution dates to show per goal")
}

// applyConfig loads the config file and folds it into any flags the user
// didn't set explicitly.
func applyConfig() {
	cfg, _ := config.Load()

	cli.SetCurrency(cfg.General.Currency)
	if flagUpcoming <= 0 {
		flagUpcoming = cfg.General.UpcomingCount
	}
	if flagUpcoming <= 0 {
		flagUpcoming = engine.DefaultUpcoming
	}
	if flagDataDir == "" {
		flagDataDir = cfg.General.DataDir
	}
}

// openStore opens (creating if needed) the SQLite database.
func openStore() (*store.Store, error) {
	path := store.DefaultPath()
	if flagDataDir != "" {
		path = filepath.Join(flagDataDir, "nestegg.db")
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return s, nil
}

// effectiveNow resolves the evaluation timestamp, honoring --date.
func effectiveNow() (time.Time, error) {
	if flagDate == "" {
		return model.Day(time.Now()), nil
	}
	t, err := time.Parse(model.DayFormat, flagDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", flagDate)
	}
	return t, nil
}

// syncChallenges re-evaluates all challenges against the current ledger
// and persists any that changed. Every command that displays challenge
// state goes through here so stored progress never lags the ledger.
func syncChallenges(s *store.Store, pass engine.Pass) ([]model.SavingsChallenge, error) {
	challenges, err := s.Challenges()
	if err != nil {
		return nil, err
	}
	if len(challenges) == 0 {
		return nil, nil
	}

	txs, err := s.Transactions()
	if err != nil {
		return nil, err
	}

	updated, changed := pass.Challenges(challenges, txs)
	if changed {
		if err := s.SaveChallenges(updated); err != nil {
			return nil, fmt.Errorf("saving challenge progress: %w", err)
		}
	}
	return updated, nil
}

// findGoal resolves a goal by numeric ID or case-insensitive name prefix.
func findGoal(goals []model.Goal, ref string) (model.Goal, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		for _, g := range goals {
			if g.ID == id {
				return g, nil
			}
		}
		return model.Goal{}, fmt.Errorf("no goal with id %d", id)
	}

	lower := strings.ToLower(ref)
	var matches []model.Goal
	for _, g := range goals {
		if strings.HasPrefix(strings.ToLower(g.Name), lower) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Goal{}, fmt.Errorf("no goal matching %q", ref)
	default:
		names := make([]string, len(matches))
		for i, g := range matches {
			names[i] = g.Name
		}
		return model.Goal{}, fmt.Errorf("ambiguous goal %q (matches: %s)", ref, strings.Join(names, ", "))
	}
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %v", amount)
	}
	return amount, nil
}
