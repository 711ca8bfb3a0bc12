package tui

import (
	"fmt"
	"strings"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/tui/components"
	"github.com/nestegg-dev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderChallengesTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.challenges) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString("\n")
		b.WriteString(empty.Render("  No challenges yet."))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("  Press n to start one."))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)
	nameW := innerW / 3
	if nameW < 12 {
		nameW = 12
	}
	barW := innerW - nameW - 34
	if barW < 8 {
		barW = 8
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var list strings.Builder
	for i, c := range a.challenges {
		marker := "  "
		style := nameStyle
		if i == a.chalCursor {
			marker = "▸ "
			style = selStyle
		}
		pct := 0.0
		if c.TargetProgress > 0 {
			pct = c.CurrentProgress / c.TargetProgress
		}
		list.WriteString(fmt.Sprintf("%s%s %s %-12s %s\n",
			marker,
			style.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Name, nameW))),
			components.GoalBar(pct, barW),
			a.statusBadge(c.Status),
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(challengeProgressText(c))))
	}
	b.WriteString(components.ContentCard(fmt.Sprintf("Challenges (%d)", len(a.challenges)), list.String(), cw))
	b.WriteString("\n")

	b.WriteString(a.renderChallengeDetail(a.challenges[a.chalCursor], cw))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  n: new challenge"))
	return b.String()
}

func (a App) statusBadge(s model.ChallengeStatus) string {
	t := theme.Active
	switch s {
	case model.StatusCompleted:
		return lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("completed")
	case model.StatusFailed:
		return lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render("failed")
	case model.StatusActive:
		return lipgloss.NewStyle().Foreground(t.Yellow).Render("active")
	default:
		return lipgloss.NewStyle().Foreground(t.TextDim).Render(string(s))
	}
}

func challengeProgressText(c model.SavingsChallenge) string {
	switch c.Type {
	case model.ChallengeNoSpend, model.ChallengeStreak:
		return fmt.Sprintf("%d/%d days", int(c.CurrentProgress), int(c.TargetProgress))
	default:
		return fmt.Sprintf("%s/%s", cli.FormatMoney(c.CurrentProgress), cli.FormatMoney(c.TargetProgress))
	}
}

func (a App) renderChallengeDetail(c model.SavingsChallenge, cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)), value)
	}

	row("Type", valueStyle.Render(challengeTypeLabel(c.Type)))
	if c.TargetCategory != "" {
		row("Category", valueStyle.Render(c.TargetCategory))
	}
	row("Window", valueStyle.Render(fmt.Sprintf("%s – %s (%d days)",
		cli.FormatDate(c.StartDate, a.now), cli.FormatDate(c.EndDate, a.now), c.DurationDays)))
	row("Progress", valueStyle.Render(challengeProgressText(c)))
	row("Status", a.statusBadge(c.Status))

	if c.Status == model.StatusActive && !c.EndDate.IsZero() {
		row("Ends", valueStyle.Render(cli.FormatDaysUntil(c.EndDate, a.now)))
	}

	return components.ContentCard(c.Name, b.String(), cw)
}

func challengeTypeLabel(ct model.ChallengeType) string {
	switch ct {
	case model.ChallengeNoSpend:
		return "no-spend — one point per clean day"
	case model.ChallengeReduceCategory:
		return "reduce category — stay under a spending cap"
	case model.ChallengeSaveAmount:
		return "save amount — net saved over the window"
	case model.ChallengeStreak:
		return "streak — consecutive days with activity logged"
	default:
		return string(ct)
	}
}
