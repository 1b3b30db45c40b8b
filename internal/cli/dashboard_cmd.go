package cli

import (
	"fmt"

	"github.com/alexanderramin/montessori/internal/cli/formatter"
	"github.com/alexanderramin/montessori/internal/stats"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"stats"},
		Short:   "Show class-wide completion by area and a student ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Snapshots.Snapshot()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(formatter.DashboardData{
				Overview: stats.ClassOverview(snap),
				Rates:    stats.AreaRates(snap),
				Rankings: stats.StudentRankings(snap),
			}))
			return nil
		},
	}
}
