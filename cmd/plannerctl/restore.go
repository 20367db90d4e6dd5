package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/adapter/alerts"
	dbadapter "planner/internal/adapter/db"
	"planner/internal/app/message"
	"planner/internal/app/scheduler"
	"planner/internal/core/domain"
	"planner/pkg/clock"
)

func restoreAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore-alerts",
		Short: "Show the alerts the server registers for open tasks at boot",
		Long: `Compute, without registering anything, the reminders the API server
restores on start: one day and one hour before each open task's due instant,
keeping only those still in the future.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := connect()
			if err != nil {
				return err
			}
			defer closeDB(db)

			policy := cfg.DuePolicy()
			c := clock.System{Location: policy.Location}
			composer := message.NewComposer(c, policy, cfg.Language)
			// Disabled alerter: Plan never touches the port.
			planner := scheduler.NewAlertScheduler(alerts.NewLocalAlerter(c, nil, false), composer, c, policy)

			tasks, err := dbadapter.NewTaskRepository(db).ListTasks(cmd.Context(), domain.TaskFilter{})
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}

			var planned []domain.Alert
			for _, task := range tasks {
				if task.Completed {
					continue
				}
				dueAt, ok := policy.DueAt(task)
				if !ok {
					continue
				}
				planned = append(planned, planner.Plan(task.ID, task.Title, dueAt)...)
			}

			return printAlerts(cmd.OutOrStdout(), planned)
		},
	}
}

func printAlerts(out io.Writer, planned []domain.Alert) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALERT\tTASK\tKIND\tFIRES AT\tBODY")
	for _, alert := range planned {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", alert.ID, alert.TaskID, alert.Kind, alert.FireAt.Format(time.DateTime), alert.Body)
	}
	fmt.Fprintf(w, "\n%d alert(s)\n", len(planned))
	return w.Flush()
}
