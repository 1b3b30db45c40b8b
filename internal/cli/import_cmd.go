package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/montessori/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import works and students from a JSON file",
		Long: `Import a curriculum and/or a student roster from a JSON file:

  {
    "works":    [{"area": "数学区", "title": "纺锤棒箱", "description": "0-9"}],
    "students": [{"name": "Mei", "gender": "女", "age": 4}]
  }

Works already in the curriculum (same area and title) are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				return fmt.Errorf("import file is invalid:\n%w", errors.Join(errs...))
			}

			conv, err := importer.Convert(schema, app.Works.Works())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(conv.Works) == 0 && len(conv.Students) == 0 {
				fmt.Fprintf(out, "Nothing to import (%d work(s) already present).\n", conv.Skipped)
				return nil
			}

			ok, err := app.confirm(fmt.Sprintf("Import %d work(s) and %d student(s)?", len(conv.Works), len(conv.Students)), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}

			ctx := context.Background()
			added, err := app.Works.AddWorksBulk(ctx, conv.Works)
			if err != nil {
				return err
			}
			for _, d := range conv.Students {
				if _, err := app.Students.AddStudent(ctx, d); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "Imported %d work(s) and %d student(s); skipped %d existing work(s)\n",
				len(added), len(conv.Students), conv.Skipped)
			return nil
		},
	}

	yesFlag(cmd.Flags(), &yes)

	return cmd
}
