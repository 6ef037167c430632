package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// FormatAuditTrail renders a trail most-recent-first. limit <= 0 shows
// everything.
func FormatAuditTrail(trail []domain.AuditEntry, limit int) string {
	var b strings.Builder
	b.WriteString(Header("Audit Trail") + "\n")

	if len(trail) == 0 {
		b.WriteString(Dim("No activity recorded.") + "\n")
		return b.String()
	}

	entries := domain.NewestFirst(trail)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			Dim(HumanTimestamp(e.Timestamp)),
			StyleBlue.Render(string(e.Action)),
			e.Details)
		fmt.Fprintf(&b, "%s\n", Dim("           by "+e.User))
	}
	return b.String()
}
