package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newOpportunityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "opp",
		Aliases: []string{"opportunity"},
		Short:   "Triage incoming opportunities",
	}

	cmd.AddCommand(
		newOppListCmd(app),
		newOppPromoteCmd(app),
		newOppRejectCmd(app),
	)

	return cmd
}

func newOppListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List opportunities awaiting triage",
		RunE: func(cmd *cobra.Command, args []string) error {
			opps, err := app.Opportunities.ListPending(context.Background())
			if err != nil {
				return err
			}
			if len(opps) == 0 {
				fmt.Println("No pending opportunities.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatDealList(opps))
			return nil
		},
	}
}

func newOppPromoteCmd(app *App) *cobra.Command {
	var division string

	cmd := &cobra.Command{
		Use:   "promote ID",
		Short: "Approve an opportunity into a division",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if division == "" && app.interactive() {
				if err := runDivisionForm(&division); err != nil {
					return err
				}
			}

			d, err := app.Opportunities.Promote(ctx, dealID, domain.Division(division), app.Actor)
			if err != nil {
				return err
			}
			app.Notify.Successf("%s promoted to %s (%s)", d.Name, division, d.DealType)
			return nil
		},
	}

	cmd.Flags().StringVar(&division, "division", "", `Division ("Investment Banking" or "Asset Management")`)

	return cmd
}

func newOppRejectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject ID",
		Short: "Reject an opportunity (hard delete, irreversible)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Opportunities.Reject(ctx, dealID); err != nil {
				return err
			}
			app.Notify.Successf("Opportunity %s rejected and removed", dealID[:8])
			return nil
		},
	}
}
