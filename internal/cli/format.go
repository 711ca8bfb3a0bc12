// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// currency is the symbol prefixed to money values. Set once at startup
// from config.
var currency = "$"

// SetCurrency overrides the money symbol.
func SetCurrency(symbol string) {
	if symbol != "" {
		currency = symbol
	}
}

// FormatMoney formats an amount with the configured currency symbol.
// Whole amounts drop the cents; e.g. 1234.5 -> "$1,234.50", 200 -> "$200".
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100

	s := currency + FormatNumber(whole)
	if cents > 0 {
		s += fmt.Sprintf(".%02d", cents)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDate renders a day as "Jan 2" within the current year, else
// "Jan 2 2006".
func FormatDate(t, now time.Time) string {
	if t.IsZero() {
		return "—"
	}
	if t.Year() == now.Year() {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2 2006")
}

// FormatDaysUntil renders the gap from now to t as "today", "tomorrow",
// "in 5 days", or "3 days ago".
func FormatDaysUntil(t, now time.Time) string {
	days := int(model.Day(t).Sub(model.Day(now)).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}
