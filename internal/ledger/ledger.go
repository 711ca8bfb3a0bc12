// Package ledger provides pure window filtering and aggregation over the
// transaction ledger. All functions treat their input as an immutable
// snapshot and operate at calendar-day granularity.
package ledger

import (
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// FilterWindow returns transactions whose day falls within [from, to],
// both inclusive. Zero bounds are open on that side.
func FilterWindow(txs []model.Transaction, from, to time.Time) []model.Transaction {
	if from.IsZero() && to.IsZero() {
		return txs
	}
	fromDay, toDay := model.Day(from), model.Day(to)

	var result []model.Transaction
	for _, tx := range txs {
		d := model.Day(tx.Date)
		if !from.IsZero() && d.Before(fromDay) {
			continue
		}
		if !to.IsZero() && d.After(toDay) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// Expenses returns only expense transactions.
func Expenses(txs []model.Transaction) []model.Transaction {
	var result []model.Transaction
	for _, tx := range txs {
		if tx.Type == model.TransactionExpense {
			result = append(result, tx)
		}
	}
	return result
}

// SumExpensesByCategory totals expense amounts matching the given category.
func SumExpensesByCategory(txs []model.Transaction, category string) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.Type == model.TransactionExpense && tx.Category == category {
			sum += tx.Amount
		}
	}
	return sum
}

// Totals sums income and expense amounts regardless of category.
func Totals(txs []model.Transaction) (income, expense float64) {
	for _, tx := range txs {
		switch tx.Type {
		case model.TransactionIncome:
			income += tx.Amount
		case model.TransactionExpense:
			expense += tx.Amount
		}
	}
	return income, expense
}

// NetFlow is income minus expense over the given transactions.
func NetFlow(txs []model.Transaction) float64 {
	income, expense := Totals(txs)
	return income - expense
}

// ActiveDays returns the set of day keys (canonical day strings) that have
// at least one transaction of any type.
func ActiveDays(txs []model.Transaction) map[string]struct{} {
	days := make(map[string]struct{})
	for _, tx := range txs {
		days[model.FormatDay(model.Day(tx.Date))] = struct{}{}
	}
	return days
}

// DailyExpenseTotals returns expense totals for every day in [from, to]
// inclusive, oldest first, with gap days as zeros.
func DailyExpenseTotals(txs []model.Transaction, from, to time.Time) []float64 {
	fromDay, toDay := model.Day(from), model.Day(to)
	if toDay.Before(fromDay) {
		return nil
	}

	byDay := make(map[string]float64)
	for _, tx := range FilterWindow(Expenses(txs), from, to) {
		byDay[model.FormatDay(model.Day(tx.Date))] += tx.Amount
	}

	var totals []float64
	for day := fromDay; !day.After(toDay); day = day.AddDate(0, 0, 1) {
		totals = append(totals, byDay[model.FormatDay(day)])
	}
	return totals
}
