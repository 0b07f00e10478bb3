package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
	"github.com/swarmline/swarmline/internal/usecase"
)

// newNextCommand creates the next command.
func newNextCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Ledger string
	}

	cmd := &cobra.Command{
		Use:   "next <agent>",
		Short: "Show the next available task for an agent",
		Long: `Show the next available task for an agent: the first incomplete
task bound to it, scanning active phases in order. Tasks in phases that
have not been activated yet are invisible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledgerName := opts.Ledger
			if ledgerName == "" {
				ledgerName = c.Ledger()
			}

			uc := c.NextTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NextTaskInput{
				Ledger: ledgerName,
				Agent:  args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Task == nil {
				_, _ = fmt.Fprintf(w, "No available task for %q\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\n", out.Task.ID, out.Task.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "Ledger file name (default from config)")

	return cmd
}
