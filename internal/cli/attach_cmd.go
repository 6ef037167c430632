package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newAttachCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Manage deal attachments",
	}

	cmd.AddCommand(
		newAttachAddCmd(app),
		newAttachRemoveCmd(app),
	)

	return cmd
}

func newAttachAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add DEAL FILE",
		Short: "Attach a file to a deal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Attachments.Attach(ctx, dealID, args[1], app.Actor)
			if err != nil {
				return err
			}
			last := d.Attachments[len(d.Attachments)-1]
			app.Notify.Successf("Attached %s to %s (%d bytes)", last.Filename, d.Name, last.Size)
			return nil
		},
	}
}

func newAttachRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DEAL ATTACHMENT",
		Short: "Remove an attachment from a deal",
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
			attachmentID, err := resolveAttachmentID(deal, args[1])
			if err != nil {
				return err
			}
			d, err := app.Attachments.Remove(ctx, dealID, attachmentID, app.Actor)
			if err != nil {
				return err
			}
			app.Notify.Successf("Attachment removed from %s, %d remaining", d.Name, len(d.Attachments))
			return nil
		},
	}
}
