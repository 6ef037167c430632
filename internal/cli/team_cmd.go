package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage deal pod teams and the assignment board",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamRemoveCmd(app),
		newTeamBoardCmd(app),
	)

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	var name, role, email, phone string

	cmd := &cobra.Command{
		Use:   "add DEAL",
		Short: "Add a member to a deal's pod team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}

			// Missing required fields fall back to an interactive form
			// on a terminal.
			if (name == "" || role == "") && app.interactive() {
				if err := runTeamMemberForm(&name, &role, &email); err != nil {
					return err
				}
			}

			m := domain.PodTeamMember{Name: name, Role: role, Email: email, Phone: phone}
			d, err := app.Team.AddMember(ctx, dealID, m, app.Actor)
			if err != nil {
				return err
			}

			app.Notify.Successf("Added %s (%s) to %s, pod team now %d",
				m.Name, m.Role, d.Name, len(d.PodTeam))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", "", "Member role (e.g. Analyst, VP)")
	cmd.Flags().StringVar(&email, "email", "", "Email (used to link a directory user)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")

	return cmd
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DEAL INDEX",
		Short: "Remove the pod team member at the given index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}
			d, err := app.Team.RemoveMember(ctx, dealID, index, app.Actor)
			if err != nil {
				return err
			}
			app.Notify.Successf("Removed member %d from %s, pod team now %d",
				index, d.Name, len(d.PodTeam))
			return nil
		},
	}
}

func newTeamBoardCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show per-user open-task load and availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Assignments.Board(context.Background())
			if err != nil {
				return err
			}
			if filter != "" {
				want := domain.Availability(filter)
				filtered := rows[:0]
				for _, r := range rows {
					if r.Availability == want {
						filtered = append(filtered, r)
					}
				}
				rows = filtered
			}
			if len(rows) == 0 {
				fmt.Println("No users on the board.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatBoard(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "availability", "", "Filter by availability (Available, Light, Busy)")

	return cmd
}
