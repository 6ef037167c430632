package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// HumanTimestamp formats a timestamp for the audit trail view.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// Millions formats a deal value expressed in USD millions.
func Millions(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("$%.1fB", v/1000)
	}
	return fmt.Sprintf("$%.0fM", v)
}
