package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/montessori/internal/cli/formatter"
	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errNeedsConfirmation = errors.New("confirmation required: rerun with --yes or from an interactive terminal")

// montessoriHuhTheme returns a huh theme matching the formatter palette.
func montessoriHuhTheme() *huh.Theme {
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
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirm asks a yes/no question. yes short-circuits to true. Without a
// terminal and without a Confirm override the question cannot be asked and
// errNeedsConfirmation is returned.
func (app *App) confirm(title string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	if app.Confirm != nil {
		return app.Confirm(title)
	}
	if !app.interactive() {
		return false, errNeedsConfirmation
	}
	ok := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(montessoriHuhTheme()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// studentForm collects the fields of a new student interactively. Fields
// already set in d are used as defaults.
func studentForm(d *domain.StudentDraft, age *string) *huh.Form {
	if d.Gender == "" {
		d.Gender = domain.GenderFemale
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&d.Name).
				Validate(requiredText("name")),
			huh.NewSelect[domain.Gender]().
				Title("Gender").
				Options(
					huh.NewOption("女 (female)", domain.GenderFemale),
					huh.NewOption("男 (male)", domain.GenderMale),
				).
				Value(&d.Gender),
			huh.NewInput().
				Title("Age").
				Placeholder("4").
				Value(age).
				Validate(validateAge),
			huh.NewInput().
				Title("Parent contact (optional)").
				Value(&d.ParentContact),
			huh.NewText().
				Title("Notes (optional)").
				Value(&d.Notes),
		),
	).WithTheme(montessoriHuhTheme()).WithShowHelp(false)
}

// workForm collects the fields of a new work interactively.
func workForm(d *domain.WorkDraft) *huh.Form {
	options := make([]huh.Option[domain.Area], 0, len(domain.Areas()))
	for _, a := range domain.Areas() {
		options = append(options, huh.NewOption(string(a), a))
	}
	if d.Area == "" {
		d.Area = domain.AreaDailyLife
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Area]().
				Title("Area").
				Options(options...).
				Value(&d.Area),
			huh.NewInput().
				Title("Title").
				Value(&d.Title).
				Validate(requiredText("title")),
			huh.NewInput().
				Title("Description (optional)").
				Value(&d.Description),
		),
	).WithTheme(montessoriHuhTheme()).WithShowHelp(false)
}

func requiredText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateAge(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 12 {
		return fmt.Errorf("age must be a number between 1 and 12")
	}
	return nil
}
