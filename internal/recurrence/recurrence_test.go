package recurrence

import (
	"errors"
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

func TestNextOccurrence_Weekly(t *testing.T) {
	tests := []struct {
		name   string
		anchor string
		now    string
		want   string
	}{
		{"anchor in past", "2024-01-01", "2024-01-10", "2024-01-15"},
		{"anchor equals now", "2024-01-01", "2024-01-01", "2024-01-08"},
		{"anchor on lattice point", "2024-01-01", "2024-01-08", "2024-01-15"},
		{"anchor in future", "2024-02-01", "2024-01-10", "2024-02-01"},
		{"year boundary", "2023-12-25", "2023-12-30", "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(mustDay(t, tt.anchor), model.FrequencyWeekly, mustDay(t, tt.now))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := mustDay(t, tt.want); !got.Equal(want) {
				t.Errorf("NextOccurrence = %s, want %s", model.FormatDay(got), tt.want)
			}
		})
	}
}

func TestNextOccurrence_Biweekly(t *testing.T) {
	got, err := NextOccurrence(mustDay(t, "2024-01-01"), model.FrequencyBiweekly, mustDay(t, "2024-01-20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := mustDay(t, "2024-01-29"); !got.Equal(want) {
		t.Errorf("NextOccurrence = %s, want 2024-01-29", model.FormatDay(got))
	}
}

func TestNextOccurrence_MonthlyClampsShortMonths(t *testing.T) {
	tests := []struct {
		name   string
		anchor string
		now    string
		want   string
	}{
		{"31st into february", "2024-01-31", "2024-02-01", "2024-02-29"},
		{"31st recovers in march", "2024-01-31", "2024-03-01", "2024-03-31"},
		{"non-leap february", "2023-01-31", "2023-02-01", "2023-02-28"},
		{"30th into april", "2024-03-30", "2024-04-01", "2024-04-30"},
		{"plain mid-month", "2024-01-15", "2024-03-20", "2024-04-15"},
		{"year rollover", "2024-11-15", "2024-12-20", "2025-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(mustDay(t, tt.anchor), model.FrequencyMonthly, mustDay(t, tt.now))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := mustDay(t, tt.want); !got.Equal(want) {
				t.Errorf("NextOccurrence = %s, want %s", model.FormatDay(got), tt.want)
			}
		})
	}
}

func TestNextOccurrence_ZeroAnchorUsesNow(t *testing.T) {
	now := mustDay(t, "2024-06-10")
	got, err := NextOccurrence(time.Time{}, model.FrequencyWeekly, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := mustDay(t, "2024-06-17"); !got.Equal(want) {
		t.Errorf("NextOccurrence = %s, want 2024-06-17", model.FormatDay(got))
	}
}

func TestNextOccurrence_UnknownFrequency(t *testing.T) {
	_, err := NextOccurrence(mustDay(t, "2024-01-01"), model.Frequency("daily"), mustDay(t, "2024-01-02"))
	if err == nil {
		t.Fatal("expected error for unknown frequency")
	}
}

// Result is strictly after now, and one interval back is not.
func TestNextOccurrence_Monotonic(t *testing.T) {
	anchors := []string{"2023-01-31", "2024-01-01", "2024-02-29", "2019-07-04"}
	nows := []string{"2024-01-01", "2024-02-28", "2024-06-15", "2024-12-31"}
	freqs := []model.Frequency{model.FrequencyWeekly, model.FrequencyBiweekly, model.FrequencyMonthly}

	for _, a := range anchors {
		for _, n := range nows {
			for _, f := range freqs {
				anchor, now := mustDay(t, a), mustDay(t, n)
				got, err := NextOccurrence(anchor, f, now)
				if err != nil {
					t.Fatalf("anchor=%s now=%s freq=%s: %v", a, n, f, err)
				}
				if !got.After(now) {
					t.Errorf("anchor=%s now=%s freq=%s: result %s not after now",
						a, n, f, model.FormatDay(got))
				}

				// Stepping back one interval lands on or before now,
				// provided the anchor itself is not in the future.
				if anchor.After(now) {
					continue
				}
				var back time.Time
				if f == model.FrequencyMonthly {
					back = addMonthsClamped(got, -1)
				} else {
					back = got.AddDate(0, 0, -f.IntervalDays())
				}
				if back.After(now) {
					t.Errorf("anchor=%s now=%s freq=%s: stepping back from %s gives %s, still after now",
						a, n, f, model.FormatDay(got), model.FormatDay(back))
				}
			}
		}
	}
}

func TestNextOccurrence_RunawayBound(t *testing.T) {
	// An anchor ten millennia back cannot converge within the bound.
	anchor := time.Date(-8000, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := NextOccurrence(anchor, model.FrequencyWeekly, mustDay(t, "2024-01-01"))
	if !errors.Is(err, ErrRunawayRecurrence) {
		t.Fatalf("err = %v, want ErrRunawayRecurrence", err)
	}
}

func TestCurrentPeriodStart(t *testing.T) {
	tests := []struct {
		name string
		freq model.Frequency
		now  string
		want string
	}{
		{"weekly midweek", model.FrequencyWeekly, "2024-06-12", "2024-06-09"}, // Wed -> Sun
		{"weekly on sunday", model.FrequencyWeekly, "2024-06-09", "2024-06-09"},
		{"weekly on saturday", model.FrequencyWeekly, "2024-06-15", "2024-06-09"},
		{"biweekly rolling", model.FrequencyBiweekly, "2024-06-15", "2024-06-01"},
		{"monthly", model.FrequencyMonthly, "2024-06-15", "2024-06-01"},
		{"monthly on the first", model.FrequencyMonthly, "2024-06-01", "2024-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentPeriodStart(tt.freq, mustDay(t, tt.now))
			if want := mustDay(t, tt.want); !got.Equal(want) {
				t.Errorf("CurrentPeriodStart = %s, want %s", model.FormatDay(got), tt.want)
			}
		})
	}
}

func TestAddMonthsClamped_Negative(t *testing.T) {
	got := addMonthsClamped(mustDay(t, "2024-03-31"), -1)
	if want := mustDay(t, "2024-02-29"); !got.Equal(want) {
		t.Errorf("addMonthsClamped(-1) = %s, want 2024-02-29", model.FormatDay(got))
	}
}
