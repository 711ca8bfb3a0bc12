package tui

import (
	"fmt"
	"strings"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/ledger"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/tui/components"
	"github.com/nestegg-dev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderLedgerTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.txs) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString("\n")
		b.WriteString(empty.Render("  No transactions yet. Log one with `nestegg log expense`."))
		return b.String()
	}

	// Totals cards over the whole ledger and the last 30 days
	income, expense := ledger.Totals(a.txs)
	from := a.now.AddDate(0, 0, -29)
	mIncome, mExpense := ledger.Totals(ledger.FilterWindow(a.txs, from, a.now))

	cards := []struct{ Label, Value, Sub string }{
		{"All-time Net", cli.FormatMoney(income - expense), fmt.Sprintf("%d transactions", len(a.txs))},
		{"All-time Out", cli.FormatMoney(expense), ""},
		{"30d Net", cli.FormatMoney(mIncome - mExpense), ""},
		{"30d Out", cli.FormatMoney(mExpense), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Recent transactions, newest first
	innerW := components.CardInnerWidth(cw)
	recent := a.txs
	if len(recent) > 12 {
		recent = recent[len(recent)-12:]
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	catStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	inStyle := lipgloss.NewStyle().Foreground(t.Green)
	outStyle := lipgloss.NewStyle().Foreground(t.Orange)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	catW := innerW / 4
	if catW < 10 {
		catW = 10
	}

	var list strings.Builder
	for i := len(recent) - 1; i >= 0; i-- {
		tx := recent[i]
		amt := outStyle.Render(fmt.Sprintf("%10s", "-"+cli.FormatMoney(tx.Amount)))
		if tx.Type == model.TransactionIncome {
			amt = inStyle.Render(fmt.Sprintf("%10s", "+"+cli.FormatMoney(tx.Amount)))
		}
		category := tx.Category
		if category == "" {
			category = "—"
		}
		line := fmt.Sprintf("%s %s %s",
			dateStyle.Render(fmt.Sprintf("%-11s", cli.FormatDate(tx.Date, a.now))),
			amt,
			catStyle.Render(fmt.Sprintf("%-*s", catW, truncStr(category, catW))))
		if tx.Note != "" {
			line += " " + noteStyle.Render(truncStr(tx.Note, innerW-catW-25))
		}
		list.WriteString(line)
		list.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Recent Transactions", list.String(), cw))

	return b.String()
}
