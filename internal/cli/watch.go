package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
	"github.com/swarmline/swarmline/internal/tui/watch"
)

// launchWatchFunc is a function variable so tests can stub the TUI launch.
var launchWatchFunc = launchWatch

// newWatchCommand creates the watch command.
func newWatchCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Ledger string
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the ledger in a live terminal view",
		RunE: func(_ *cobra.Command, _ []string) error {
			ledgerName := opts.Ledger
			if ledgerName == "" {
				ledgerName = c.Ledger()
			}
			return launchWatchFunc(c, ledgerName)
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "Ledger file name (default from config)")

	return cmd
}

func launchWatch(c *app.Container, ledgerName string) error {
	model := watch.New(c.Store, ledgerName)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
