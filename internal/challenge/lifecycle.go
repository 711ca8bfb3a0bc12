package challenge

import (
	"fmt"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// defaultTarget is the fallback target for amount-based templates that
// don't specify one.
const defaultTarget = 100

// Start constructs an active challenge from a template as of now. This is
// a one-time binding of the window, not repeated per evaluation.
func Start(t model.ChallengeTemplate, now time.Time) model.SavingsChallenge {
	day := model.Day(now)

	target := t.TargetAmount
	if t.Type == model.ChallengeStreak {
		target = float64(t.DurationDays)
	} else if target <= 0 {
		target = defaultTarget
	}

	return model.SavingsChallenge{
		Name:            t.Name,
		Type:            t.Type,
		StartDate:       day,
		EndDate:         day.AddDate(0, 0, t.DurationDays),
		DurationDays:    t.DurationDays,
		TargetProgress:  target,
		CurrentProgress: 0,
		TargetCategory:  t.TargetCategory,
		Status:          model.StatusActive,
	}
}

// Templates are the built-in challenge presets.
var Templates = []model.ChallengeTemplate{
	{
		Key:          "no-spend-week",
		Name:         "No-Spend Week",
		Description:  "Seven days without a single expense.",
		Type:         model.ChallengeNoSpend,
		DurationDays: 7,
		TargetAmount: 7, // clean-day count to reach
	},
	{
		Key:          "no-spend-month",
		Name:         "No-Spend Month",
		Description:  "Thirty days without a single expense. Good luck.",
		Type:         model.ChallengeNoSpend,
		DurationDays: 30,
		TargetAmount: 30,
	},
	{
		Key:            "dining-diet",
		Name:           "Dining Diet",
		Description:    "Keep dining-out spend under $150 this month.",
		Type:           model.ChallengeReduceCategory,
		DurationDays:   30,
		TargetAmount:   150,
		TargetCategory: "dining",
	},
	{
		Key:            "grocery-cap",
		Name:           "Grocery Cap",
		Description:    "Keep grocery spend under $300 this month.",
		Type:           model.ChallengeReduceCategory,
		DurationDays:   30,
		TargetAmount:   300,
		TargetCategory: "groceries",
	},
	{
		Key:          "save-100-sprint",
		Name:         "$100 Sprint",
		Description:  "End the week $100 ahead.",
		Type:         model.ChallengeSaveAmount,
		DurationDays: 7,
		TargetAmount: 100,
	},
	{
		Key:          "save-500",
		Name:         "Save $500",
		Description:  "Net $500 saved over thirty days.",
		Type:         model.ChallengeSaveAmount,
		DurationDays: 30,
		TargetAmount: 500,
	},
	{
		Key:          "tracking-streak-14",
		Name:         "Two-Week Tracking Streak",
		Description:  "Log at least one transaction every day for 14 days.",
		Type:         model.ChallengeStreak,
		DurationDays: 14,
	},
	{
		Key:          "tracking-streak-30",
		Name:         "Thirty-Day Tracking Streak",
		Description:  "Log at least one transaction every day for a month.",
		Type:         model.ChallengeStreak,
		DurationDays: 30,
	},
}

// TemplateByKey finds a built-in template.
func TemplateByKey(key string) (model.ChallengeTemplate, error) {
	for _, t := range Templates {
		if t.Key == key {
			return t, nil
		}
	}
	return model.ChallengeTemplate{}, fmt.Errorf("unknown challenge template %q", key)
}
