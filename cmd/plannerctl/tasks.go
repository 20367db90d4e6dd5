package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	dbadapter "planner/internal/adapter/db"
	"planner/internal/core/domain"
	"planner/pkg/clock"
)

func tasksCmd() *cobra.Command {
	var bucketName string
	var projectID uint64

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks with their derived state and bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter domain.TaskFilter
			if bucketName != "" {
				bucket, ok := domain.ParseFilterBucket(bucketName)
				if !ok {
					return fmt.Errorf("unknown bucket %q", bucketName)
				}
				filter.Bucket = &bucket
			}
			if projectID > 0 {
				filter.ProjectID = &projectID
			}

			cfg, db, err := connect()
			if err != nil {
				return err
			}
			defer closeDB(db)

			policy := cfg.DuePolicy()
			tasks, err := dbadapter.NewTaskRepository(db).ListTasks(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}

			views := domain.NewTaskViews(tasks, clock.System{Location: policy.Location}.Now(), policy)
			return printTasks(cmd.OutOrStdout(), views, filter.Bucket)
		},
	}

	cmd.Flags().StringVarP(&bucketName, "bucket", "b", "", "only show one bucket (today, upcoming, completed, overdue)")
	cmd.Flags().Uint64VarP(&projectID, "project", "p", 0, "only show tasks of this project")

	return cmd
}

func printTasks(out io.Writer, views []domain.TaskView, bucket *domain.FilterBucket) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDUE\tSTATE\tBUCKET")
	for _, view := range views {
		if bucket != nil && view.Bucket != *bucket {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", view.ID, view.Title, formatDue(view.Task), view.State, view.Bucket)
	}
	return w.Flush()
}

func formatDue(task domain.Task) string {
	if task.DueDate == nil {
		return "-"
	}
	due := task.DueDate.Format(clock.DateLayout)
	if task.DueTime != nil {
		due += " " + task.DueTime.Short()
	}
	return due
}
