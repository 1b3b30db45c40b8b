package cli

import (
	"time"

	"github.com/alexanderramin/montessori/internal/intelligence"
	"github.com/alexanderramin/montessori/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands.
type App struct {
	Students  service.StudentService
	Works     service.WorkService
	Progress  service.ProgressService
	Snapshots service.SnapshotSource

	// Suggest is nil when no suggestion service is wired; work suggest then
	// reports that no suggestions are available.
	Suggest intelligence.SuggestionService

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// board are only shown when it returns true.
	IsInteractive func() bool

	// Confirm overrides the huh confirmation prompt. Tests set it.
	Confirm func(title string) (bool, error)

	// Now is the clock used for relative timestamps in output.
	Now func() time.Time
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "montessori" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "montessori",
		Short:         "Montessori classroom progress tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStudentCmd(app),
		newWorkCmd(app),
		newProgressCmd(app),
		newDashboardCmd(app),
		newBoardCmd(app),
		newImportCmd(app),
	)

	return root
}
