package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board STUDENT",
		Short: "Interactive progress board for one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStudent(app, args[0])
			if err != nil {
				return err
			}
			if !app.interactive() {
				return fmt.Errorf("board needs an interactive terminal; use 'student show' instead")
			}

			p := tea.NewProgram(newBoardView(app, s),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
