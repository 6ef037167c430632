package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// deskHuhTheme styles huh forms with the formatter palette.
func deskHuhTheme() *huh.Theme {
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

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// runTeamMemberForm collects the fields for a pod team member.
func runTeamMemberForm(name, role, email *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name).Validate(validateRequired("name")),
			huh.NewInput().Title("Role").Placeholder("Analyst").Value(role).Validate(validateRequired("role")),
			huh.NewInput().Title("Email (blank for external contact)").Value(email),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false)
	return form.Run()
}

// runInvestorForm collects the fields for tagging an investor.
func runInvestorForm(name, firm, invType, status *string) error {
	typeOptions := make([]huh.Option[string], 0, 6)
	for _, t := range []domain.InvestorType{
		domain.InvestorPE, domain.InvestorVC, domain.InvestorStrategic,
		domain.InvestorFamilyOffice, domain.InvestorHedgeFund, domain.InvestorSovereignWealth,
	} {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}

	statusOptions := make([]huh.Option[string], 0, 6)
	for _, s := range []domain.InvestorStatus{
		domain.InvestorContacted, domain.InvestorInterested, domain.InvestorInDD,
		domain.InvestorTermSheet, domain.InvestorPassed, domain.InvestorClosedOut,
	} {
		statusOptions = append(statusOptions, huh.NewOption(string(s), string(s)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Investor Name").Value(name).Validate(validateRequired("name")),
			huh.NewInput().Title("Firm").Value(firm).Validate(validateRequired("firm")),
			huh.NewSelect[string]().Title("Type").Options(typeOptions...).Value(invType),
			huh.NewSelect[string]().Title("Status").Options(statusOptions...).Value(status),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false)
	return form.Run()
}

// runDivisionForm asks which division an opportunity is promoted into.
func runDivisionForm(division *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Division").
				Options(
					huh.NewOption(string(domain.DivisionInvestmentBanking), string(domain.DivisionInvestmentBanking)),
					huh.NewOption(string(domain.DivisionAssetManagement), string(domain.DivisionAssetManagement)),
				).
				Value(division),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false)
	return form.Run()
}
