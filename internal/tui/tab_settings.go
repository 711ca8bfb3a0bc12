package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nestegg-dev/nestegg/internal/cli"
	"github.com/nestegg-dev/nestegg/internal/config"
	"github.com/nestegg-dev/nestegg/internal/tui/components"
	"github.com/nestegg-dev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldCurrency = iota
	settingsFieldUpcoming
	settingsFieldTheme
	settingsFieldDataDir
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldCurrency:
		ti.Placeholder = "$"
		ti.SetValue(a.cfg.General.Currency)
	case settingsFieldUpcoming:
		ti.Placeholder = "3"
		ti.SetValue(strconv.Itoa(a.cfg.General.UpcomingCount))
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, th := range theme.All {
			names[i] = th.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldDataDir:
		ti.Placeholder = "(empty = default location)"
		ti.SetValue(a.cfg.General.DataDir)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldCurrency:
		if val != "" {
			a.cfg.General.Currency = val
			cli.SetCurrency(val)
		}
	case settingsFieldUpcoming:
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			a.cfg.General.UpcomingCount = n
		}
	case settingsFieldTheme:
		a.cfg.Appearance.Theme = theme.ByName(val).Name
		theme.SetActive(a.cfg.Appearance.Theme)
	case settingsFieldDataDir:
		a.cfg.General.DataDir = val
	}

	a.settings.saveErr = config.Save(a.cfg)
	a.recompute()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	dataDir := a.cfg.General.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}

	fields := []struct {
		label string
		value string
	}{
		{"Currency symbol", a.cfg.General.Currency},
		{"Upcoming dates shown", strconv.Itoa(a.cfg.General.UpcomingCount)},
		{"Theme", a.cfg.Appearance.Theme},
		{"Data directory", dataDir},
	}

	var b strings.Builder
	for i, f := range fields {
		marker := "  "
		style := valueStyle
		if i == a.settings.cursor {
			marker = "▸ "
			style = selStyle
		}

		if a.settings.editing && i == a.settings.cursor {
			fmt.Fprintf(&b, "%s%s %s\n",
				marker,
				labelStyle.Render(fmt.Sprintf("%-22s", f.label)),
				a.settings.input.View())
		} else {
			fmt.Fprintf(&b, "%s%s %s\n",
				marker,
				labelStyle.Render(fmt.Sprintf("%-22s", f.label)),
				style.Render(f.value))
		}
	}

	b.WriteString("\n")
	switch {
	case a.settings.editing:
		b.WriteString(hintStyle.Render("Enter to save, Esc to cancel"))
	case a.settings.saveErr != nil:
		b.WriteString(errStyle.Render(fmt.Sprintf("Save failed: %v", a.settings.saveErr)))
	case a.settings.saved:
		b.WriteString(goodStyle.Render("Saved to " + config.ConfigPath()))
	default:
		b.WriteString(hintStyle.Render("j/k to select, Enter to edit"))
	}

	return components.ContentCard("Settings", b.String(), cw)
}
