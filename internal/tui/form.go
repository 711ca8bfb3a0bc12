package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nestegg-dev/nestegg/internal/challenge"
	"github.com/nestegg-dev/nestegg/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newChallengeValues holds the bindings for the new-challenge form.
type newChallengeValues struct {
	templateKey string
	category    string
	target      string
}

// openNewForm builds and activates the huh form for starting a challenge.
func (a App) openNewForm() (tea.Model, tea.Cmd) {
	a.newVals = newChallengeValues{}

	options := make([]huh.Option[string], 0, len(challenge.Templates))
	for _, tpl := range challenge.Templates {
		options = append(options, huh.NewOption(
			fmt.Sprintf("%s — %s", tpl.Name, tpl.Description), tpl.Key))
	}

	a.newForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Challenge template").
				Options(options...).
				Value(&a.newVals.templateKey),
			huh.NewInput().
				Title("Spending category").
				Description("Required for reduce-category templates, ignored otherwise.").
				Value(&a.newVals.category),
			huh.NewInput().
				Title("Target override").
				Description("Leave blank to use the template's target.").
				Validate(validateOptionalAmount).
				Value(&a.newVals.target),
		),
	)
	if a.width > 0 {
		a.newForm = a.newForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.newForm.Init()
}

func validateOptionalAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive amount or leave blank")
	}
	return nil
}

func (a App) updateNewForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.newForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.newForm = f
	}

	if a.newForm.State == huh.StateCompleted {
		a.startChallengeFromForm()
		a.newForm = nil
		return a, loadDataCmd(a.store, a.now)
	}

	if a.newForm.State == huh.StateAborted {
		a.newForm = nil
		return a, nil
	}

	return a, cmd
}

// startChallengeFromForm applies the form values and persists the new
// challenge. Best-effort: a save failure surfaces on the next reload.
func (a *App) startChallengeFromForm() {
	tpl, err := challenge.TemplateByKey(a.newVals.templateKey)
	if err != nil {
		return
	}

	if category := strings.TrimSpace(a.newVals.category); category != "" {
		tpl.TargetCategory = category
	}
	if target := strings.TrimSpace(a.newVals.target); target != "" {
		if v, err := strconv.ParseFloat(strings.TrimPrefix(target, "$"), 64); err == nil && v > 0 {
			tpl.TargetAmount = v
		}
	}
	if tpl.Type == model.ChallengeReduceCategory && tpl.TargetCategory == "" {
		return
	}

	c := challenge.Start(tpl, a.now)
	_, _ = a.store.SaveChallenge(c)
}
