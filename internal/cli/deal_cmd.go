package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/spf13/cobra"
)

func newDealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Manage deals",
	}

	cmd.AddCommand(
		newDealAddCmd(app),
		newDealListCmd(app),
		newDealInspectCmd(app),
		newDealStageCmd(app),
		newDealNotesCmd(app),
		newDealAuditCmd(app),
		newDealRemoveCmd(app),
	)

	return cmd
}

func newDealAddCmd(app *App) *cobra.Command {
	var name, client, sector, lead, dealType, stage string
	var value float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new deal",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &domain.Deal{
				Name:     name,
				Client:   client,
				Sector:   sector,
				Value:    value,
				Lead:     lead,
				DealType: domain.DealType(dealType),
				Stage:    domain.Stage(stage),
			}

			if err := app.Deals.Create(context.Background(), d, app.Actor); err != nil {
				return err
			}

			app.Notify.Successf("Created deal %s [%s]", d.Name, d.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Deal name")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&sector, "sector", "", "Sector")
	cmd.Flags().Float64Var(&value, "value", 0, "Deal value in USD millions")
	cmd.Flags().StringVar(&lead, "lead", "", "Deal lead")
	cmd.Flags().StringVar(&dealType, "type", "", `Deal type ("Opportunity", "M&A", "Asset Management")`)
	cmd.Flags().StringVar(&stage, "stage", "", "Initial stage (defaults to Origination)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func newDealListCmd(app *App) *cobra.Command {
	var dealType, stage string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := repository.DealFilter{
				DealType: domain.DealType(dealType),
				Stage:    domain.Stage(stage),
			}
			deals, err := app.Deals.List(context.Background(), filter)
			if err != nil {
				return err
			}
			if len(deals) == 0 {
				fmt.Println("No deals found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatDealList(deals))
			return nil
		},
	}

	cmd.Flags().StringVar(&dealType, "type", "", "Filter by deal type")
	cmd.Flags().StringVar(&stage, "stage", "", "Filter by stage")

	return cmd
}

func newDealInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show deal details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Deals.GetByID(ctx, dealID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDealCard(d))
			return nil
		},
	}
}

func newDealStageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stage ID STAGE",
		Short: "Advance or move a deal to a lifecycle stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Deals.ChangeStage(ctx, dealID, domain.Stage(args[1]), app.Actor)
			if err != nil {
				return err
			}
			app.Notify.Successf("%s moved to %s (%d%%)", d.Name, d.Stage, d.Progress)
			return nil
		},
	}
}

func newDealNotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notes ID TEXT",
		Short: "Replace the free-form notes on a deal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Deals.UpdateNotes(ctx, dealID, args[1], app.Actor)
			if err != nil {
				return err
			}
			app.Notify.Successf("Notes updated on %s", d.Name)
			return nil
		},
	}
}

func newDealAuditCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "audit ID",
		Short: "Show a deal's audit trail, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Deals.GetByID(ctx, dealID)
			if err != nil {
				return err
			}
			limit := 10
			if all {
				limit = 0
			}
			fmt.Printf("%s\n", formatter.FormatAuditTrail(d.AuditTrail, limit))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show the full trail")

	return cmd
}

func newDealRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a deal permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Deals.Delete(ctx, dealID); err != nil {
				return err
			}
			app.Notify.Successf("Deal %s deleted", dealID[:8])
			return nil
		},
	}
}
