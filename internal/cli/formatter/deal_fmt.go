package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// FormatDealList renders the pipeline as a table inside a bordered box.
func FormatDealList(deals []*domain.Deal) string {
	headers := []string{"ID", "NAME", "CLIENT", "TYPE", "STAGE", "VALUE", "PROGRESS"}
	rows := make([][]string, 0, len(deals))

	for _, d := range deals {
		rows = append(rows, []string{
			TruncID(d.ID),
			Bold(d.Name),
			d.Client,
			string(d.DealType),
			StageColor(d.Stage).Render(string(d.Stage)),
			Millions(d.Value),
			RenderProgress(float64(d.Progress)/100, 10),
		})
	}

	return RenderBox("Pipeline", RenderTable(headers, rows))
}

// FormatDealCard renders the full inspect view of one deal: metadata,
// pod team, tagged investors, attachments and the recent audit trail.
func FormatDealCard(d *domain.Deal) string {
	var b strings.Builder

	b.WriteString(Header(d.Name))
	b.WriteString("\n")
	writeField(&b, "ID", TruncID(d.ID))
	writeField(&b, "Client", d.Client)
	writeField(&b, "Sector", d.Sector)
	writeField(&b, "Lead", d.Lead)
	writeField(&b, "Type", string(d.DealType))
	writeField(&b, "Status", StatusPill(d.Status))
	writeField(&b, "Stage", StageColor(d.Stage).Render(string(d.Stage)))
	writeField(&b, "Value", Millions(d.Value))
	writeField(&b, "Progress", RenderProgress(float64(d.Progress)/100, 20))
	if d.Notes != "" {
		writeField(&b, "Notes", d.Notes)
	}

	if len(d.PodTeam) > 0 {
		b.WriteString("\n" + Header("Pod Team") + "\n")
		rows := make([][]string, 0, len(d.PodTeam))
		for i, m := range d.PodTeam {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i),
				Bold(m.Name),
				m.Role,
				Dim(m.Email),
			})
		}
		b.WriteString(RenderTable([]string{"#", "NAME", "ROLE", "EMAIL"}, rows))
	}

	if len(d.TaggedInvestors) > 0 {
		b.WriteString("\n" + Header("Tagged Investors") + "\n")
		rows := make([][]string, 0, len(d.TaggedInvestors))
		for _, inv := range d.TaggedInvestors {
			rows = append(rows, []string{
				TruncID(inv.ID),
				Bold(inv.Name),
				inv.Firm,
				string(inv.Type),
				InvestorStatusPill(inv.Status),
			})
		}
		b.WriteString(RenderTable([]string{"ID", "NAME", "FIRM", "TYPE", "STATUS"}, rows))
	}

	if len(d.Attachments) > 0 {
		b.WriteString("\n" + Header("Attachments") + "\n")
		rows := make([][]string, 0, len(d.Attachments))
		for _, a := range d.Attachments {
			rows = append(rows, []string{
				TruncID(a.ID),
				a.Filename,
				fmt.Sprintf("%d bytes", a.Size),
				Dim(HumanTimestamp(a.UploadedAt)),
			})
		}
		b.WriteString(RenderTable([]string{"ID", "FILE", "SIZE", "UPLOADED"}, rows))
	}

	b.WriteString("\n" + FormatAuditTrail(d.AuditTrail, 5))

	return RenderBox("", b.String())
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", Dim(fmt.Sprintf("%-9s", label+":")), value)
}
