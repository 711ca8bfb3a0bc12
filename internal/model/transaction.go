// Package model defines domain types for nestegg goals, challenges, and the
// transaction ledger.
package model

import "time"

// DayFormat is the canonical calendar-day layout used everywhere a date is
// stored or displayed. The engine works at day granularity only.
const DayFormat = "2006-01-02"

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one ledger entry. The engine treats the ledger as a
// read-only snapshot; ordering is irrelevant.
type Transaction struct {
	ID       int64
	Date     time.Time // calendar day, midnight UTC
	Amount   float64   // non-negative
	Type     TransactionType
	Category string
	Note     string
}

// Day truncates t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a canonical day string. Unparsable input is clamped to
// fallback rather than reported: these are derived/display dates, not a
// ledger of record.
func ParseDay(s string, fallback time.Time) time.Time {
	if s == "" {
		return Day(fallback)
	}
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day(fallback)
	}
	return t
}

// FormatDay renders t as a canonical day string. Zero times render empty.
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DayFormat)
}
