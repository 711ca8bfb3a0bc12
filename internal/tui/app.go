// Package tui provides the interactive Bubble Tea dashboard for nestegg.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/nestegg-dev/nestegg/internal/config"
	"github.com/nestegg-dev/nestegg/internal/engine"
	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/store"
	"github.com/nestegg-dev/nestegg/internal/tui/components"
	"github.com/nestegg-dev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg is sent when the store snapshot is ready. Challenge
// progress is already synced against the ledger by the loader.
type dataLoadedMsg struct {
	goals      []model.Goal
	challenges []model.SavingsChallenge
	txs        []model.Transaction
	err        error
}

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config
	now   time.Time

	// Data snapshot
	goals      []model.Goal
	reports    []engine.GoalReport
	challenges []model.SavingsChallenge
	txs        []model.Transaction
	loaded     bool
	loadErr    error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	goalCursor int
	chalCursor int
	settings   settingsState

	// New-challenge form (huh)
	newForm *huh.Form
	newVals newChallengeValues

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
)

const (
	tabOverview = iota
	tabGoals
	tabChallenges
	tabLedger
	tabSettings
)

// NewApp creates a new TUI app model. The store stays open for the
// lifetime of the program; the caller closes it.
func NewApp(s *store.Store, cfg config.Config, now time.Time) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		store:   s,
		cfg:     cfg,
		now:     model.Day(now),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.store, a.now),
		a.spinner.Tick,
	)
}

// recompute derives goal reports from the current snapshot.
func (a *App) recompute() {
	pass := engine.NewPass(a.now)
	if a.cfg.General.UpcomingCount > 0 {
		pass.UpcomingCount = a.cfg.General.UpcomingCount
	}
	a.reports = pass.Goals(a.goals)

	if a.goalCursor >= len(a.reports) {
		a.goalCursor = len(a.reports) - 1
	}
	if a.goalCursor < 0 {
		a.goalCursor = 0
	}
	if a.chalCursor >= len(a.challenges) {
		a.chalCursor = len(a.challenges) - 1
	}
	if a.chalCursor < 0 {
		a.chalCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.newForm != nil {
			a.newForm = a.newForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.newForm != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
			return a, nil
		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// New-challenge form intercepts all keys
		if a.newForm != nil {
			return a.updateNewForm(msg)
		}

		// Settings text input intercepts all keys
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			a.loaded = false
			return a, tea.Batch(loadDataCmd(a.store, a.now), a.spinner.Tick)
		case "j", "down":
			a.moveCursor(1)
			return a, nil
		case "k", "up":
			a.moveCursor(-1)
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "n":
			if a.activeTab == tabChallenges {
				return a.openNewForm()
			}
		case "enter":
			if a.activeTab == tabSettings {
				return a.settingsStartEdit()
			}
		}

		if len(key) == 1 {
			if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case dataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err == nil {
			a.goals = msg.goals
			a.challenges = msg.challenges
			a.txs = msg.txs
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.newForm != nil {
		return a.updateNewForm(msg)
	}

	return a, nil
}

// moveCursor moves the active tab's list cursor by delta.
func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabGoals:
		a.goalCursor = clamp(a.goalCursor+delta, 0, len(a.reports)-1)
	case tabChallenges:
		a.chalCursor = clamp(a.chalCursor+delta, 0, len(a.challenges)-1)
	case tabSettings:
		a.settings.cursor = clamp(a.settings.cursor+delta, 0, settingsFieldCount-1)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.newForm != nil {
		return a.newForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  nestegg needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◉ nestegg"))
	b.WriteString(subtitleStyle.Render(" · Savings Tracker"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◉ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o g c l x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"n", "New challenge (Challenges tab)"},
		{"Enter", "Edit setting (Settings tab)"},
		{"Esc", "Back / Cancel"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"
	statusBar := components.RenderStatusBar(w, a.now.Format("Jan 2 2006"))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.loadErr != nil {
		content = fmt.Sprintf("\n  Could not load data: %v\n\n  Press r to retry.", a.loadErr)
	} else {
		switch a.activeTab {
		case tabOverview:
			content = a.renderOverviewTab(cw)
		case tabGoals:
			content = a.renderGoalsTab(cw)
		case tabChallenges:
			content = a.renderChallengesTab(cw)
		case tabLedger:
			content = a.renderLedgerTab(cw)
		case tabSettings:
			content = a.renderSettingsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// loadDataCmd reads the full snapshot from the store and syncs stored
// challenge progress against the ledger before handing it to the UI.
func loadDataCmd(s *store.Store, now time.Time) tea.Cmd {
	return func() tea.Msg {
		goals, err := s.Goals()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		txs, err := s.Transactions()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		challenges, err := s.Challenges()
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		pass := engine.NewPass(now)
		updated, changed := pass.Challenges(challenges, txs)
		if changed {
			// Best-effort: stale progress on disk is corrected next pass
			_ = s.SaveChallenges(updated)
		}

		return dataLoadedMsg{goals: goals, challenges: updated, txs: txs}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space before the first tab
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator between tabs
	}
	return -1
}
