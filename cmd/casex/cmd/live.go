package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mdwstringx "github.com/msto63/mdwx/foundation/utils/stringx"
	"github.com/msto63/mdwx/internal/tui"
)

func newLiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "live [text...]",
		Short: "Starts the interactive conversion preview",
		Long: `Shows every convention while you type.

Navigation:
  Up/Down   - Select convention
  Enter     - Print the selected conversion and quit
  Esc       - Quit without output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := mdwstringx.ParseConvention(a.config.GetString(keyConvention))
			if err != nil {
				initial = mdwstringx.ConventionCamel
			}

			p := tea.NewProgram(
				tui.NewModel(initial, strings.Join(args, " ")),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
			)

			final, err := p.Run()
			if err != nil {
				a.logger.ErrorWithErr("live preview failed", err)
				return err
			}

			if out, ok := final.(tui.Model).Chosen(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}
