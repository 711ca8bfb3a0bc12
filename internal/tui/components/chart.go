package components

import (
	"fmt"
	"strings"

	"github.com/nestegg-dev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a column chart with partial-block resolution. Columns
// are one character wide; when values exceed width the series is sampled
// down. A peak label sits above the chart, labels (if provided) below.
func BarChart(values []float64, firstLabel, lastLabel string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 10 || height < 2 {
		return Sparkline(values, color)
	}

	t := theme.Active

	// Downsample to fit
	if len(values) > width {
		sampled := make([]float64, width)
		for i := range sampled {
			sampled[i] = values[i*(len(values)-1)/(width-1)]
		}
		values = sampled
	}
	n := len(values)

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	cells := height * 8 // partial-block resolution

	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(dimStyle.Render("peak " + formatChartValue(peak)))
	b.WriteString("\n")

	for row := height - 1; row >= 0; row-- {
		line := make([]rune, n)
		for i, v := range values {
			filled := int(v / peak * float64(cells))
			rowBase := row * 8
			switch {
			case filled >= rowBase+8:
				line[i] = '█'
			case filled > rowBase:
				line[i] = blocks[filled-rowBase]
			default:
				line[i] = ' '
			}
		}
		b.WriteString(barStyle.Render(string(line)))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(strings.Repeat("─", n)))
	if firstLabel != "" || lastLabel != "" {
		gap := n - len(firstLabel) - len(lastLabel)
		if gap < 1 {
			gap = 1
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(firstLabel + strings.Repeat(" ", gap) + lastLabel))
	}

	return b.String()
}

func formatChartValue(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 100:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
