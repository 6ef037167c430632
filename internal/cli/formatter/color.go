package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StageColor returns the style used for a lifecycle stage, warming up as
// the deal advances.
func StageColor(s domain.Stage) lipgloss.Style {
	switch s {
	case domain.StageOrigination, domain.StageExecution:
		return StyleBlue
	case domain.StageNegotiation, domain.StageDueDiligence:
		return StyleYellow
	case domain.StageSigning:
		return StylePurple
	case domain.StageClosed:
		return StyleGreen
	default:
		return StyleDim
	}
}

// AvailabilityIndicator returns a colored load indicator such as "● BUSY".
func AvailabilityIndicator(a domain.Availability) string {
	switch a {
	case domain.Available:
		return StyleGreen.Render("● AVAILABLE")
	case domain.Light:
		return StyleYellow.Render("● LIGHT")
	case domain.Busy:
		return StyleRed.Render("● BUSY")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StatusPill renders a deal status as a short colored tag.
func StatusPill(status domain.DealStatus) string {
	label := strings.ToUpper(strings.ReplaceAll(string(status), "_", " "))
	switch status {
	case domain.DealActive:
		return StyleGreen.Render(label)
	case domain.DealPending:
		return StyleYellow.Render(label)
	case domain.DealOnHold:
		return StyleDim.Render(label)
	case domain.DealClosed:
		return StyleBlue.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// InvestorStatusPill renders an investor funnel status.
func InvestorStatusPill(status domain.InvestorStatus) string {
	switch status {
	case domain.InvestorContacted:
		return StyleDim.Render(string(status))
	case domain.InvestorInterested:
		return StyleBlue.Render(string(status))
	case domain.InvestorInDD, domain.InvestorTermSheet:
		return StyleYellow.Render(string(status))
	case domain.InvestorClosedOut:
		return StyleGreen.Render(string(status))
	case domain.InvestorPassed:
		return StyleRed.Render(string(status))
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
