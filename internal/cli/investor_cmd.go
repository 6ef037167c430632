package cli

import (
	"context"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newInvestorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investor",
		Short: "Manage investors tagged on a deal",
	}

	cmd.AddCommand(
		newInvestorTagCmd(app),
		newInvestorStatusCmd(app),
		newInvestorRemoveCmd(app),
	)

	return cmd
}

func newInvestorTagCmd(app *App) *cobra.Command {
	var name, firm, invType, status, notes string

	cmd := &cobra.Command{
		Use:   "tag DEAL",
		Short: "Tag an investor on a deal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if (name == "" || firm == "") && app.interactive() {
				if err := runInvestorForm(&name, &firm, &invType, &status); err != nil {
					return err
				}
			}

			inv := domain.TaggedInvestor{
				Name:   name,
				Firm:   firm,
				Type:   domain.InvestorType(invType),
				Status: domain.InvestorStatus(status),
				Notes:  notes,
			}
			d, err := app.Investors.Tag(ctx, dealID, inv, app.Actor)
			if err != nil {
				return err
			}

			app.Notify.Successf("Tagged %s (%s) on %s", inv.Name, inv.Firm, d.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Investor name")
	cmd.Flags().StringVar(&firm, "firm", "", "Investor firm")
	cmd.Flags().StringVar(&invType, "type", "", "Investor type (PE, VC, Strategic, Family Office, Hedge Fund, Sovereign Wealth)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (defaults to Contacted)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newInvestorStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status DEAL INVESTOR STATUS",
		Short: "Move a tagged investor to a new funnel status",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deal, err := app.Deals.GetByID(ctx, dealID)
			if err != nil {
				return err
			}
			investorID, err := resolveInvestorID(deal, args[1])
			if err != nil {
				return err
			}
			d, err := app.Investors.UpdateStatus(ctx, dealID, investorID,
				domain.InvestorStatus(args[2]), app.Actor)
			if err != nil {
				return err
			}
			app.Notify.Successf("Investor moved to %s on %s", args[2], d.Name)
			return nil
		},
	}
}

func newInvestorRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DEAL INVESTOR",
		Short: "Remove a tagged investor from a deal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deal, err := app.Deals.GetByID(ctx, dealID)
			if err != nil {
				return err
			}
			investorID, err := resolveInvestorID(deal, args[1])
			if err != nil {
				return err
			}
			d, err := app.Investors.Remove(ctx, dealID, investorID, app.Actor)
			if err != nil {
				return err
			}
			app.Notify.Successf("Investor removed from %s, %d still tagged",
				d.Name, len(d.TaggedInvestors))
			return nil
		},
	}
}
