package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPipelineCmd(app *App) *cobra.Command {
	cmd := newPipelineSummaryCmd(app)
	cmd.AddCommand(newPipelineImportCmd(app))
	return cmd
}

func newPipelineSummaryCmd(app *App) *cobra.Command {
	var activity int

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Show the pipeline summary and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			summary, err := app.Pipeline.Summary(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatPipelineSummary(summary))

			if activity > 0 {
				feed, err := app.Pipeline.RecentActivity(ctx, activity)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatActivityFeed(feed))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&activity, "activity", 5, "Number of recent audit entries to show (0 to hide)")

	return cmd
}

func newPipelineImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a pipeline snapshot from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Import.ImportFile(context.Background(), args[0], app.Actor)
			if err != nil {
				return err
			}
			app.Notify.Successf("Imported %d deal(s) and %d user(s) from %s",
				summary.Deals, summary.Users, args[0])
			return nil
		},
	}
}
