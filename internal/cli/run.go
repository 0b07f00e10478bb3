package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
	"github.com/swarmline/swarmline/internal/usecase"
)

// roundTo trims execution times for display.
const roundTo = time.Millisecond

// newRunCommand creates the run command for executing a phase.
func newRunCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Ledger string
	}

	cmd := &cobra.Command{
		Use:   "run <phase>",
		Short: "Run all incomplete tasks in a phase",
		Long: `Run all incomplete tasks in the named phase, strictly in order.

Each task's agent must be configured under [agents.<name>] in the config;
an unknown agent aborts the run before any later task executes. The
ledger is rewritten after every completed task.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledgerName := opts.Ledger
			if ledgerName == "" {
				ledgerName = c.Ledger()
			}

			uc := c.RunPhaseUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RunPhaseInput{
				Registry: c.Registry,
				Ledger:   ledgerName,
				Phase:    args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.NothingToDo {
				_, _ = fmt.Fprintf(w, "Phase %q has no incomplete tasks\n", args[0])
				return nil
			}

			for _, report := range out.Reports {
				if report.Result.Success {
					_, _ = fmt.Fprintf(w, "ok    %s (%s, %s)\n",
						report.Description, report.Agent, report.Result.ExecutionTime.Round(roundTo))
					continue
				}
				_, _ = fmt.Fprintf(w, "FAIL  %s (%s): %s\n",
					report.Description, report.Agent, report.Result.ErrorMessage)
			}
			_, _ = fmt.Fprintf(w, "Overall completion: %.1f%%\n", out.Completion)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "Ledger file name (default from config)")

	return cmd
}
