package ledger

import (
	"testing"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DayFormat, s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}
	return d
}

func tx(t *testing.T, day string, amount float64, typ model.TransactionType, category string) model.Transaction {
	t.Helper()
	return model.Transaction{Date: mustDay(t, day), Amount: amount, Type: typ, Category: category}
}

func TestFilterWindow_InclusiveBounds(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2024-01-01", 10, model.TransactionExpense, "food"),
		tx(t, "2024-01-05", 20, model.TransactionExpense, "food"),
		tx(t, "2024-01-10", 30, model.TransactionExpense, "food"),
	}

	got := FilterWindow(txs, mustDay(t, "2024-01-01"), mustDay(t, "2024-01-05"))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (both bounds inclusive)", len(got))
	}

	// Zero bounds are open.
	if got := FilterWindow(txs, time.Time{}, time.Time{}); len(got) != 3 {
		t.Errorf("open window len = %d, want 3", len(got))
	}
	if got := FilterWindow(txs, mustDay(t, "2024-01-05"), time.Time{}); len(got) != 2 {
		t.Errorf("from-only window len = %d, want 2", len(got))
	}
}

func TestTotalsAndNetFlow(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2024-01-01", 500, model.TransactionIncome, "salary"),
		tx(t, "2024-01-02", 200, model.TransactionExpense, "rent"),
		tx(t, "2024-01-03", 100, model.TransactionExpense, "food"),
	}

	income, expense := Totals(txs)
	if income != 500 || expense != 300 {
		t.Errorf("Totals = (%.0f, %.0f), want (500, 300)", income, expense)
	}
	if net := NetFlow(txs); net != 200 {
		t.Errorf("NetFlow = %.0f, want 200", net)
	}
}

func TestSumExpensesByCategory(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2024-01-01", 40, model.TransactionExpense, "dining"),
		tx(t, "2024-01-02", 60, model.TransactionExpense, "dining"),
		tx(t, "2024-01-03", 25, model.TransactionExpense, "groceries"),
		tx(t, "2024-01-04", 999, model.TransactionIncome, "dining"), // income ignored
	}

	if got := SumExpensesByCategory(txs, "dining"); got != 100 {
		t.Errorf("SumExpensesByCategory(dining) = %.0f, want 100", got)
	}
	if got := SumExpensesByCategory(txs, "travel"); got != 0 {
		t.Errorf("SumExpensesByCategory(travel) = %.0f, want 0", got)
	}
}

func TestActiveDays(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2024-01-01", 10, model.TransactionExpense, "a"),
		tx(t, "2024-01-01", 20, model.TransactionIncome, "b"),
		tx(t, "2024-01-03", 30, model.TransactionExpense, "c"),
	}

	days := ActiveDays(txs)
	if len(days) != 2 {
		t.Fatalf("len = %d, want 2", len(days))
	}
	if _, ok := days["2024-01-01"]; !ok {
		t.Error("expected 2024-01-01 in active days")
	}
	if _, ok := days["2024-01-02"]; ok {
		t.Error("2024-01-02 should not be active")
	}
}

func TestDailyExpenseTotals_FillsGaps(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2024-01-01", 10, model.TransactionExpense, "a"),
		tx(t, "2024-01-03", 30, model.TransactionExpense, "a"),
		tx(t, "2024-01-03", 5, model.TransactionExpense, "b"),
	}

	got := DailyExpenseTotals(txs, mustDay(t, "2024-01-01"), mustDay(t, "2024-01-04"))
	want := []float64{10, 0, 35, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d total = %.0f, want %.0f", i, got[i], want[i])
		}
	}
}
