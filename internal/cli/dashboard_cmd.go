package cli

import (
	"fmt"

	"github.com/alexanderramin/nexus/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	req := app.DashboardDefaults

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show open work and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.RecentIncidents < 0 || req.RecentTasks < 0 {
				return fmt.Errorf("recent activity limits must not be negative")
			}
			resp, err := app.Dashboard.GetDashboard(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&req.RecentIncidents, "incidents", req.RecentIncidents, "Incidents considered for recent activity")
	cmd.Flags().IntVar(&req.RecentTasks, "tasks", req.RecentTasks, "Tasks considered for recent activity")

	return cmd
}
