package cli

import (
	"context"

	"github.com/alexanderramin/merma/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type saleFields struct {
	customer string
	weight   string
}

// newAddSaleFormView collects a customer and a weight and records the sale
// in one submit.
func newAddSaleFormView(state *SharedState) View {
	fields := &saleFields{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Customer").
				Placeholder("Cliente").
				Value(&fields.customer).
				Validate(validateCustomer),
			huh.NewInput().
				Title("Weight sold (kg)").
				Placeholder("0.00").
				Value(&fields.weight).
				Validate(validateSaleWeight),
		),
	).WithTheme(mermaHuhTheme()).WithShowHelp(false)

	return newWizardView(state, "Add sale", form, func() tea.Cmd {
		return func() tea.Msg { return applyAddSale(state.App, fields) }
	})
}

func applyAddSale(app *App, fields *saleFields) tea.Msg {
	return noticeMsg{notice: execAddSale(context.Background(), app, fields.customer, fields.weight)}
}

// weightTarget selects which scale reading a weight form edits.
type weightTarget int

const (
	weightInitial weightTarget = iota
	weightReturned
)

func (t weightTarget) title() string {
	if t == weightReturned {
		return "Returned weight (kg)"
	}
	return "Initial weight (kg)"
}

type weightFields struct {
	weight string
}

// newWeightFormView edits the initial or returned weight, pre-filled with
// the current value when one is set.
func newWeightFormView(state *SharedState, target weightTarget) View {
	fields := &weightFields{weight: currentWeightText(state.App, target)}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(target.title()).
				Placeholder("0.00").
				Value(&fields.weight).
				Validate(validateScaleWeight),
		),
	).WithTheme(mermaHuhTheme()).WithShowHelp(false)

	return newWizardView(state, target.title(), form, func() tea.Cmd {
		return func() tea.Msg { return applyWeight(state.App, target, fields) }
	})
}

// currentWeightText returns the stored value for target, or "" when unset.
func currentWeightText(app *App, target weightTarget) string {
	st := app.Session.State(context.Background())
	current := st.InitialWeight
	if target == weightReturned {
		current = st.ReturnedWeight
	}
	if current.IsZero() {
		return ""
	}
	return domain.FormatWeight(current)
}

func applyWeight(app *App, target weightTarget, fields *weightFields) tea.Msg {
	ctx := context.Background()
	if target == weightReturned {
		return noticeMsg{notice: execSetReturned(ctx, app, fields.weight)}
	}
	return noticeMsg{notice: execSetInitial(ctx, app, fields.weight)}
}
