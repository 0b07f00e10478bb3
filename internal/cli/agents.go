package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
)

// newAgentsCommand creates the agents command listing configured agents.
func newAgentsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List configured agents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			names := c.Registry.Names()
			if len(names) == 0 {
				_, _ = fmt.Fprintln(w, "No agents configured. Add [agents.<name>] sections to the config.")
				return nil
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(w, name)
			}
			return nil
		},
	}
}
