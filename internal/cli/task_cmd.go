package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage assignment tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskDoneCmd(app),
		newTaskListCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var user, deal, title, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Assign a task to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := resolveUserID(ctx, app, user)
			if err != nil {
				return err
			}

			t := &domain.Task{UserID: userID, Title: title}
			if deal != "" {
				dealID, err := resolveDealID(ctx, app, deal)
				if err != nil {
					return err
				}
				t.DealID = dealID
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &dueDate
			}

			if err := app.Assignments.CreateTask(ctx, t); err != nil {
				return err
			}
			app.Notify.Successf("Task %q assigned [%s]", t.Title, formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Assignee (name, email or ID)")
	cmd.Flags().StringVar(&deal, "deal", "", "Linked deal (optional)")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assignments.CompleteTask(context.Background(), args[0]); err != nil {
				return err
			}
			app.Notify.Successf("Task %s completed", formatter.TruncID(args[0]))
			return nil
		},
	}
}

func newTaskListCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := resolveUserID(ctx, app, user)
			if err != nil {
				return err
			}
			tasks, err := app.Assignments.ListByUser(ctx, userID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks.")
				return nil
			}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				due := formatter.Dim("--")
				if t.DueDate != nil {
					due = t.DueDate.Format("2006-01-02")
				}
				status := string(t.Status)
				if t.Status == domain.TaskDone {
					status = formatter.Dim(status)
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Title,
					status,
					due,
				})
			}
			fmt.Printf("%s\n", formatter.RenderBox("Tasks",
				formatter.RenderTable([]string{"ID", "TITLE", "STATUS", "DUE"}, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User (name, email or ID)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
