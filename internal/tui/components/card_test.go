package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/nestegg-dev/nestegg/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, total := range []int{80, 97, 120} {
		for n := 1; n <= 5; n++ {
			widths := LayoutRow(total, n)
			if len(widths) != n {
				t.Fatalf("LayoutRow(%d, %d) returned %d widths", total, n, len(widths))
			}
			sum := 0
			for _, w := range widths {
				sum += w
			}
			if sum != total {
				t.Errorf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestSparklineLength(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{0, 5, 10, 2, 8}
	out := Sparkline(values, theme.Active.Orange)
	if out == "" {
		t.Fatal("Sparkline returned empty string")
	}
	if Sparkline(nil, theme.Active.Orange) != "" {
		t.Error("Sparkline of empty series should be empty")
	}
}
