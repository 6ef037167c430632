package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/service"
)

// FormatPipelineSummary renders the per-stage rollup with totals.
func FormatPipelineSummary(s *service.PipelineSummary) string {
	headers := []string{"STAGE", "DEALS", "VALUE"}
	rows := make([][]string, 0, len(s.Stages))
	for _, slice := range s.Stages {
		count := fmt.Sprintf("%d", slice.Count)
		if slice.Count == 0 {
			count = Dim("0")
		}
		rows = append(rows, []string{
			StageColor(slice.Stage).Render(string(slice.Stage)),
			count,
			Millions(slice.TotalValue),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d deals, %s total",
		Bold("Pipeline:"), s.TotalDeals, Millions(s.TotalValue))
	if s.PendingOpportunities > 0 {
		fmt.Fprintf(&b, "  %s", StyleYellow.Render(
			fmt.Sprintf("(%d opportunities awaiting triage)", s.PendingOpportunities)))
	}

	return RenderBox("Pipeline Summary", b.String())
}

// FormatActivityFeed renders the cross-deal audit feed, newest first.
func FormatActivityFeed(feed []service.DealActivity) string {
	if len(feed) == 0 {
		return Dim("No recent activity.")
	}
	var b strings.Builder
	for _, a := range feed {
		fmt.Fprintf(&b, "%s  %s  %s %s\n",
			Dim(HumanTimestamp(a.Entry.Timestamp)),
			StyleBlue.Render(string(a.Entry.Action)),
			Bold(a.DealName),
			Dim("— "+a.Entry.Details))
	}
	return RenderBox("Recent Activity", strings.TrimRight(b.String(), "\n"))
}
