package cli

import (
	"errors"

	"github.com/alexanderramin/merma/internal/cli/formatter"
	"github.com/alexanderramin/merma/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// mermaHuhTheme returns a huh theme in the Gruvbox palette used by the formatter.
func mermaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorYellow)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorYellow)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardConfirm creates a yes/no form bound to result.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(mermaHuhTheme()).WithShowHelp(false)
}

// validateCustomer rejects blank customer names.
func validateCustomer(s string) error {
	if domain.NormalizeCustomer(s) == "" {
		return domain.ErrEmptyCustomer
	}
	return nil
}

// validateSaleWeight accepts a weight greater than zero.
func validateSaleWeight(s string) error {
	w, err := domain.ParseWeight(s)
	if err != nil {
		return errors.New("enter a number such as 12.5")
	}
	if !domain.RoundWeight(w).IsPositive() {
		return domain.ErrNonPositiveWeight
	}
	return nil
}

// validateScaleWeight accepts zero or a positive weight.
func validateScaleWeight(s string) error {
	w, err := domain.ParseWeight(s)
	if err != nil {
		return errors.New("enter a number such as 12.5")
	}
	if _, err := domain.ValidateScaleWeight(w); err != nil {
		return err
	}
	return nil
}
