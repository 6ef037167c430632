package formatter

import (
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/service"
)

// FormatBoard renders the team assignment board: one row per directory
// user with open-task load and availability.
func FormatBoard(rows []service.BoardRow) string {
	headers := []string{"NAME", "ROLE", "OPEN TASKS", "AVAILABILITY"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			Bold(r.User.Name),
			r.User.Role,
			fmt.Sprintf("%d", r.OpenTasks),
			AvailabilityIndicator(r.Availability),
		})
	}
	return RenderBox("Team Board", RenderTable(headers, out))
}
