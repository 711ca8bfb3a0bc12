package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/ledger"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/tui/components"
	"github.com/nestegg-dev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: Metric cards
	var saved, targets float64
	reached := 0
	for _, g := range a.goals {
		saved += g.CurrentAmount
		targets += g.TargetAmount
		if g.Reached() {
			reached++
		}
	}
	overallPct := 0.0
	if targets > 0 {
		overallPct = saved / targets
	}

	active, completed := 0, 0
	for _, c := range a.challenges {
		switch c.Status {
		case model.StatusActive:
			active++
		case model.StatusCompleted:
			completed++
		}
	}

	from := a.now.AddDate(0, 0, -29)
	month := ledger.FilterWindow(a.txs, from, a.now)
	income, expense := ledger.Totals(month)

	cards := []struct{ Label, Value, Sub string }{
		{"Saved", cli.FormatMoney(saved), fmt.Sprintf("of %s (%s)", cli.FormatMoney(targets), cli.FormatPercent(overallPct))},
		{"Goals", fmt.Sprintf("%d", len(a.goals)), fmt.Sprintf("%d reached", reached)},
		{"Challenges", fmt.Sprintf("%d active", active), fmt.Sprintf("%d completed", completed)},
		{"30d Net", cli.FormatMoney(income - expense), fmt.Sprintf("%s in / %s out", cli.FormatMoney(income), cli.FormatMoney(expense))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Daily spending chart
	daily := ledger.DailyExpenseTotals(a.txs, from, a.now)
	if len(daily) > 0 {
		chartH := 6
		if a.isCompactLayout() {
			chartH = 4
		}
		b.WriteString(components.ContentCard(
			"Daily Spending (30d)",
			components.BarChart(daily,
				from.Format("Jan 2"), a.now.Format("Jan 2"),
				t.Orange, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Next contributions + top spending categories
	halves := components.LayoutRow(cw, 2)

	nextCard := components.ContentCard("Next Contributions", a.nextContributionsBody(components.CardInnerWidth(halves[0])), halves[0])
	catCard := components.ContentCard("Top Categories (30d)", a.topCategoriesBody(month, components.CardInnerWidth(halves[1])), halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Next Contributions", a.nextContributionsBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Top Categories (30d)", a.topCategoriesBody(month, components.CardInnerWidth(cw)), cw))
	} else {
		b.WriteString(components.CardRow([]string{nextCard, catCard}))
	}

	return b.String()
}

func (a App) nextContributionsBody(innerW int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dueStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)

	type entry struct {
		report int
		due    bool
	}
	var entries []entry
	for i, r := range a.reports {
		if r.HasPlan && !r.NextContribution.IsZero() {
			entries = append(entries, entry{report: i, due: r.ContributionDue})
		}
	}
	if len(entries) == 0 {
		return dateStyle.Render("No contribution plans set up.")
	}

	sort.Slice(entries, func(i, j int) bool {
		return a.reports[entries[i].report].NextContribution.Before(a.reports[entries[j].report].NextContribution)
	})

	nameW := innerW / 2
	if nameW < 8 {
		nameW = 8
	}

	var b strings.Builder
	limit := 5
	if len(entries) < limit {
		limit = len(entries)
	}
	for _, e := range entries[:limit] {
		r := a.reports[e.report]
		when := cli.FormatDaysUntil(r.NextContribution, a.now)
		line := fmt.Sprintf("%s %s  %s",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(r.Goal.Name, nameW))),
			nameStyle.Render(fmt.Sprintf("%8s", cli.FormatMoney(r.Goal.Plan.Amount))),
			dateStyle.Render(when))
		if e.due {
			line += " " + dueStyle.Render("●")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) topCategoriesBody(month []model.Transaction, innerW int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	totals := make(map[string]float64)
	for _, tx := range ledger.Expenses(month) {
		key := tx.Category
		if key == "" {
			key = "(uncategorized)"
		}
		totals[key] += tx.Amount
	}
	if len(totals) == 0 {
		return amtStyle.Render("No spending recorded.")
	}

	type cat struct {
		name  string
		total float64
	}
	cats := make([]cat, 0, len(totals))
	for name, total := range totals {
		cats = append(cats, cat{name, total})
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].total > cats[j].total })

	if len(cats) > 5 {
		cats = cats[:5]
	}
	peak := cats[0].total

	nameW := innerW / 3
	if nameW < 8 {
		nameW = 8
	}
	barW := innerW - nameW - 12
	if barW < 4 {
		barW = 4
	}

	var b strings.Builder
	for _, c := range cats {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.name, nameW))),
			components.SimpleBar(c.total/peak, barW, t.Orange),
			amtStyle.Render(fmt.Sprintf("%9s", cli.FormatMoney(c.total)))))
	}
	return b.String()
}
