package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/montessori/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track student progress on works",
	}

	cmd.AddCommand(
		newProgressCycleCmd(app),
		newProgressShowCmd(app),
		newProgressResetCmd(app),
	)

	return cmd
}

func newProgressCycleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle STUDENT WORK",
		Short: "Advance a work to its next status (未开始 → 进行中 → 已掌握 → 未开始)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStudent(app, args[0])
			if err != nil {
				return err
			}
			w, err := resolveWork(app, args[1])
			if err != nil {
				return err
			}

			status, err := app.Progress.CycleProgress(context.Background(), s.ID, w.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s · %s → %s\n", formatter.Bold(s.Name), w.Title, formatter.StatusPill(status))
			return nil
		},
	}
}

func newProgressShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show STUDENT",
		Short: "Show a student's overall progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStudent(app, args[0])
			if err != nil {
				return err
			}

			sp := app.Progress.GetStudentProgress(s.ID)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", formatter.Bold(s.Name), formatter.RenderPercent(sp.Percent, 20))
			fmt.Fprintf(out, "已掌握 %d  进行中 %d  共 %d\n", sp.CompletedCount, sp.InProgressCount, sp.TotalCount)
			return nil
		},
	}
}

func newProgressResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset STUDENT",
		Short: "Clear every progress record of a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStudent(app, args[0])
			if err != nil {
				return err
			}

			ok, err := app.confirm(fmt.Sprintf("Reset all progress of %s?", s.Name), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			removed, err := app.Progress.ResetProgress(context.Background(), s.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d progress record(s) of %s\n", removed, formatter.Bold(s.Name))
			return nil
		},
	}

	yesFlag(cmd.Flags(), &yes)

	return cmd
}
