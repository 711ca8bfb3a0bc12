// Package challenge evaluates savings challenges against the transaction
// ledger and manages their lifecycle. Evaluation is a pure function of the
// challenge record, a ledger snapshot, and an explicit "now"; updated
// progress and status are returned for the caller to persist.
package challenge

import (
	"time"

	"github.com/nestegg-dev/nestegg/internal/ledger"
	"github.com/nestegg-dev/nestegg/internal/model"
)

// progressFunc computes current progress for one challenge type over the
// window [StartDate, now].
type progressFunc func(c model.SavingsChallenge, txs []model.Transaction, now time.Time) float64

// evaluators dispatches on challenge type. Adding a type here is the whole
// registration step; Evaluate treats an unknown type as zero progress.
var evaluators = map[model.ChallengeType]progressFunc{
	model.ChallengeNoSpend:        evalNoSpend,
	model.ChallengeReduceCategory: evalReduceCategory,
	model.ChallengeSaveAmount:     evalSaveAmount,
	model.ChallengeStreak:         evalStreak,
}

// Evaluate recomputes a challenge's progress and status as of now.
//
// Terminal states are absorbing: a completed or failed challenge is
// returned unchanged. When the window has elapsed, the stored progress is
// compared against the target and frozen as the final value; it is not
// recomputed past the end date.
func Evaluate(c model.SavingsChallenge, txs []model.Transaction, now time.Time) model.SavingsChallenge {
	if c.Status.Terminal() || c.Status == model.StatusNotStarted {
		return c
	}

	day := model.Day(now)
	if day.After(model.Day(c.EndDate)) {
		if c.CurrentProgress >= c.TargetProgress {
			c.Status = model.StatusCompleted
		} else {
			c.Status = model.StatusFailed
		}
		return c
	}

	if eval, ok := evaluators[c.Type]; ok {
		c.CurrentProgress = eval(c, txs, day)
	} else {
		c.CurrentProgress = 0
	}
	if c.Type == model.ChallengeStreak {
		c.StreakDays = int(c.CurrentProgress)
	}
	c.Status = model.StatusActive
	return c
}

// evalNoSpend is all-or-nothing: any expense anywhere in the window zeroes
// the progress; an untouched window scores the elapsed whole days.
func evalNoSpend(c model.SavingsChallenge, txs []model.Transaction, now time.Time) float64 {
	window := ledger.FilterWindow(txs, c.StartDate, now)
	if len(ledger.Expenses(window)) > 0 {
		return 0
	}
	return float64(elapsedDays(c.StartDate, now))
}

// evalReduceCategory counts down the category budget: target minus what was
// spent, floored at zero.
func evalReduceCategory(c model.SavingsChallenge, txs []model.Transaction, now time.Time) float64 {
	window := ledger.FilterWindow(txs, c.StartDate, now)
	spent := ledger.SumExpensesByCategory(window, c.TargetCategory)
	if remaining := c.TargetProgress - spent; remaining > 0 {
		return remaining
	}
	return 0
}

// evalSaveAmount is net cash flow during the window, floored at zero.
func evalSaveAmount(c model.SavingsChallenge, txs []model.Transaction, now time.Time) float64 {
	window := ledger.FilterWindow(txs, c.StartDate, now)
	if net := ledger.NetFlow(window); net > 0 {
		return net
	}
	return 0
}

// evalStreak walks each calendar day of the window. A day with at least one
// transaction extends the streak; a day with none resets it — except the
// current day, which hasn't ended yet.
func evalStreak(c model.SavingsChallenge, txs []model.Transaction, now time.Time) float64 {
	active := ledger.ActiveDays(ledger.FilterWindow(txs, c.StartDate, now))

	streak := 0
	for day := model.Day(c.StartDate); !day.After(now); day = day.AddDate(0, 0, 1) {
		if _, ok := active[model.FormatDay(day)]; ok {
			streak++
		} else if day.Before(now) {
			streak = 0
		}
	}
	return float64(streak)
}

func elapsedDays(start, now time.Time) int {
	return int(model.Day(now).Sub(model.Day(start)).Hours() / 24)
}
