package cli

import (
	"github.com/alexanderramin/dealdesk/internal/notify"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Deals         service.DealService
	Team          service.TeamService
	Investors     service.InvestorService
	Opportunities service.OpportunityService
	Attachments   service.AttachmentService
	Directory     service.DirectoryService
	Assignments   service.AssignmentService
	Pipeline      service.PipelineService
	Import        service.ImportService

	Notify notify.Notifier

	// Actor is the display name recorded on audit entries, set by the
	// persistent --as flag. Empty falls back to "System".
	Actor string

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dealdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dealdesk",
		Short: "Deal pipeline manager for the advisory desk",
	}

	root.PersistentFlags().StringVar(&app.Actor, "as", "", "Actor name recorded on audit entries")

	root.AddCommand(
		newDealCmd(app),
		newTeamCmd(app),
		newInvestorCmd(app),
		newOpportunityCmd(app),
		newAttachCmd(app),
		newUserCmd(app),
		newTaskCmd(app),
		newPipelineCmd(app),
		newDashboardCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
