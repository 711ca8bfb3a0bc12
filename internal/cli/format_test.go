package cli

import (
	"testing"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{200, "$200"},
		{42.5, "$42.50"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000"},
		{-19.99, "-$19.99"},
		{0.05, "$0.05"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDaysUntil(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		day  string
		want string
	}{
		{"2024-06-10", "today"},
		{"2024-06-11", "tomorrow"},
		{"2024-06-15", "in 5 days"},
		{"2024-06-09", "yesterday"},
		{"2024-06-05", "5 days ago"},
	}
	for _, tt := range tests {
		d, err := time.Parse(model.DayFormat, tt.day)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatDaysUntil(d, now); got != tt.want {
			t.Errorf("FormatDaysUntil(%s) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	sameYear := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(sameYear, now); got != "Mar 5" {
		t.Errorf("FormatDate same year = %q, want \"Mar 5\"", got)
	}

	otherYear := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(otherYear, now); got != "Jan 2 2025" {
		t.Errorf("FormatDate other year = %q, want \"Jan 2 2025\"", got)
	}

	if got := FormatDate(time.Time{}, now); got != "—" {
		t.Errorf("FormatDate zero = %q, want em dash", got)
	}
}
