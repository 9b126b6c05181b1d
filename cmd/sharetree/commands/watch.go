package commands

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.trai.ch/sharetree/internal/adapters/tui"
	"go.trai.ch/sharetree/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the optimization whenever the graph snapshot or configuration changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
				return c.watchTUI(cmd, c.teaOptions...)
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			var writeErr error
			err := c.app.Watch(cmd.Context(), runOptions(cmd), func(result *app.Result) {
				if writeErr == nil {
					writeErr = writeResult(out, result, asJSON)
				}
			})
			if err != nil {
				return err
			}
			return writeErr
		},
	}
	cmd.Flags().Bool("tui", false, "Show an interactive dashboard instead of printing each pass")
	return cmd
}

// watchTUI runs watch mode behind the dashboard. Quitting the dashboard stops watching.
func (c *CLI) watchTUI(cmd *cobra.Command, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	}, opts...)
	program := tea.NewProgram(tui.NewModel(), opts...)

	watchDone := make(chan error, 1)
	go func() {
		watchDone <- c.app.Watch(ctx, runOptions(cmd), func(result *app.Result) {
			program.Send(tui.MsgPass{
				Session:  result.SessionID,
				Runtimes: result.Runtimes,
				Reports:  result.Reports,
				Changed:  result.Changed,
				Markers:  result.Markers,
				At:       c.now(),
			})
		})
		program.Quit()
	}()

	_, runErr := program.Run()
	cancel()
	watchErr := <-watchDone

	if errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}
	return errors.Join(watchErr, runErr)
}
