package tui

import (
	"fmt"
	"strings"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/engine"
	"github.com/nestegg-dev/nestegg/internal/tui/components"
	"github.com/nestegg-dev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.reports) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString("\n")
		b.WriteString(empty.Render("  No goals yet. Create one with `nestegg goals add`."))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)
	nameW := innerW / 4
	if nameW < 10 {
		nameW = 10
	}
	barW := innerW - nameW - 30
	if barW < 8 {
		barW = 8
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var list strings.Builder
	for i, r := range a.reports {
		marker := "  "
		style := nameStyle
		if i == a.goalCursor {
			marker = "▸ "
			style = selStyle
		}
		list.WriteString(fmt.Sprintf("%s%s %s %s\n",
			marker,
			style.Render(fmt.Sprintf("%-*s", nameW, truncStr(r.Goal.Name, nameW))),
			components.GoalBar(r.PercentComplete, barW),
			amtStyle.Render(fmt.Sprintf("%9s / %s", cli.FormatMoney(r.Goal.CurrentAmount), cli.FormatMoney(r.Goal.TargetAmount)))))
	}
	b.WriteString(components.ContentCard(fmt.Sprintf("Goals (%d)", len(a.reports)), list.String(), cw))
	b.WriteString("\n")

	// Detail card for the selected goal
	b.WriteString(a.renderGoalDetail(a.reports[a.goalCursor], cw))
	return b.String()
}

func (a App) renderGoalDetail(r engine.GoalReport, cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green)
	dueStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)

	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label)), value)
	}

	row("Remaining", valueStyle.Render(r.TimeRemaining.String()))

	if r.HasPlan {
		row("Plan", valueStyle.Render(fmt.Sprintf("%s %s", cli.FormatMoney(r.Goal.Plan.Amount), r.Goal.Plan.Frequency)))
		if !r.Goal.Reached() {
			row("To go", valueStyle.Render(fmt.Sprintf("%d contributions", r.ContributionsNeeded)))
		}

		switch {
		case r.ContributedThisPeriod:
			row("This period", goodStyle.Render("contributed ✓"))
		case r.ContributionDue:
			row("This period", dueStyle.Render("contribution due"))
		}

		if len(r.Upcoming) > 0 {
			dates := make([]string, len(r.Upcoming))
			for i, d := range r.Upcoming {
				dates[i] = cli.FormatDate(d, a.now)
			}
			row("Upcoming", valueStyle.Render(strings.Join(dates, ", ")))
		}
	} else {
		row("Plan", labelStyle.Render("none"))
	}

	if !r.Goal.TargetDate.IsZero() {
		row("Deadline", valueStyle.Render(cli.FormatDate(r.Goal.TargetDate, a.now)))
	}

	if last, ok := r.Goal.LatestContribution(); ok {
		row("Last added", valueStyle.Render(fmt.Sprintf("%s on %s",
			cli.FormatMoney(last.Amount), cli.FormatDate(last.Date, a.now))))
	}

	return components.ContentCard(r.Goal.Name, b.String(), cw)
}
