package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/montessori/internal/cli/formatter"
	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/intelligence"
	"github.com/spf13/cobra"
)

func newWorkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "work",
		Aliases: []string{"works"},
		Short:   "Manage the curriculum",
	}

	cmd.AddCommand(
		newWorkAddCmd(app),
		newWorkListCmd(app),
		newWorkUpdateCmd(app),
		newWorkRemoveCmd(app),
		newWorkSuggestCmd(app),
	)

	return cmd
}

func newWorkAddCmd(app *App) *cobra.Command {
	var (
		d    domain.WorkDraft
		area areaFlag
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a work to the curriculum",
		RunE: func(cmd *cobra.Command, args []string) error {
			d.Area = area.area
			if d.Title == "" && app.interactive() {
				if err := workForm(&d).Run(); err != nil {
					return err
				}
			}
			if err := d.Validate(); err != nil {
				return err
			}

			w, err := app.Works.AddWork(context.Background(), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added work %s to %s %s\n", formatter.Bold(w.Title), w.Area, formatter.Dim(w.ID))
			return nil
		},
	}

	addAreaFlag(cmd, &area, "Curriculum area")
	cmd.Flags().StringVar(&d.Title, "title", "", "Work title")
	cmd.Flags().StringVar(&d.Description, "description", "", "Educational purpose")

	return cmd
}

func newWorkListCmd(app *App) *cobra.Command {
	var area areaFlag

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List works grouped by area",
		RunE: func(cmd *cobra.Command, args []string) error {
			works := app.Works.Works()
			if area.area != "" {
				works = app.Works.WorksByArea(area.area)
			}
			if len(works) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No works found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkList(works))
			return nil
		},
	}

	addAreaFlag(cmd, &area, "Only list this area")

	return cmd
}

func newWorkUpdateCmd(app *App) *cobra.Command {
	var (
		title, description string
		area               areaFlag
	)

	cmd := &cobra.Command{
		Use:   "update WORK",
		Short: "Update a work's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := resolveWork(app, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("area") {
				w.Area = area.area
			}
			if flags.Changed("title") {
				w.Title = title
			}
			if flags.Changed("description") {
				w.Description = description
			}
			if err := w.Draft().Validate(); err != nil {
				return err
			}

			if err := app.Works.UpdateWork(context.Background(), w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated work %s\n", formatter.Bold(w.Title))
			return nil
		},
	}

	addAreaFlag(cmd, &area, "New area")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")

	return cmd
}

func newWorkRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove WORK",
		Aliases: []string{"rm"},
		Short:   "Remove a work and every student's progress on it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := resolveWork(app, args[0])
			if err != nil {
				return err
			}

			records := 0
			for _, p := range app.Snapshots.Snapshot().Progress {
				if p.WorkID == w.ID {
					records++
				}
			}
			ok, err := app.confirm(fmt.Sprintf("Remove %s and %d progress record(s)?", w.Title, records), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			if err := app.Works.DeleteWork(context.Background(), w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed work %s\n", formatter.Bold(w.Title))
			return nil
		},
	}

	yesFlag(cmd.Flags(), &yes)

	return cmd
}

const noSuggestionsNotice = "No suggestions available right now. Try again later or add works manually."

func newWorkSuggestCmd(app *App) *cobra.Command {
	var (
		area areaFlag
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the model for classic works in an area and add them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if area.area == "" {
				return fmt.Errorf("--area is required")
			}
			out := cmd.OutOrStdout()
			if app.Suggest == nil {
				fmt.Fprintln(out, formatter.Dim(noSuggestionsNotice))
				return nil
			}

			existing := make([]string, 0)
			for _, w := range app.Works.WorksByArea(area.area) {
				existing = append(existing, w.Title)
			}

			res := app.Suggest.Suggest(cmd.Context(), area.area, existing)
			if !res.HasSuggestions() {
				fmt.Fprintln(out, formatter.Dim(noSuggestionsNotice))
				if res.Outcome == intelligence.OutcomeUnavailable && res.Err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("reason: "+res.Err.Error()))
				}
				return nil
			}

			fmt.Fprint(out, formatter.FormatSuggestions(area.area, res.Works))
			ok, err := app.confirm(fmt.Sprintf("Add %d work(s) to %s?", len(res.Works), area.area), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Nothing added.")
				return nil
			}

			added, err := app.Works.AddWorksBulk(context.Background(), res.Works)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Added %d work(s) to %s\n", len(added), area.area)
			return nil
		},
	}

	addAreaFlag(cmd, &area, "Curriculum area")
	yesFlag(cmd.Flags(), &yes)

	return cmd
}
