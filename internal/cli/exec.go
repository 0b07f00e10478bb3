package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
	"github.com/swarmline/swarmline/internal/usecase"
)

// newExecCommand creates the exec command for running a single task.
func newExecCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Ledger  string
		Timeout time.Duration
		Retries int
	}

	cmd := &cobra.Command{
		Use:   "exec <task-id>",
		Short: "Run a single task under the timeout/retry policy",
		Long: `Run a single task by its ID tag.

Unlike 'run', this path applies the [executor] policy: a per-attempt
timeout (the agent is abandoned, not killed, when it expires) and bounded
retries with exponential backoff. Defaults come from the config; flags
override them. On success the task is marked complete in the ledger.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledgerName := opts.Ledger
			if ledgerName == "" {
				ledgerName = c.Ledger()
			}

			execOpts := c.ExecutorOptions()
			if cmd.Flags().Changed("timeout") {
				execOpts.Timeout = opts.Timeout
			}
			if cmd.Flags().Changed("retries") {
				execOpts.MaxRetries = opts.Retries
			}

			uc := c.RunTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RunTaskInput{
				Registry: c.Registry,
				Ledger:   ledgerName,
				TaskID:   args[0],
				Options:  execOpts,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			res := out.Result
			if !res.Success {
				if res.TimedOut {
					_, _ = fmt.Fprintf(w, "timed out after %d attempt(s): %s\n", res.RetriesUsed+1, res.ErrorMessage)
				} else {
					_, _ = fmt.Fprintf(w, "failed: %s\n", res.ErrorMessage)
				}
				return fmt.Errorf("task %s did not complete", args[0])
			}

			_, _ = fmt.Fprintf(w, "ok (%s", res.ExecutionTime.Round(roundTo))
			if res.RetriesUsed > 0 {
				_, _ = fmt.Fprintf(w, ", %d retries", res.RetriesUsed)
			}
			_, _ = fmt.Fprintf(w, ")\nOverall completion: %.1f%%\n", out.Completion)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "Ledger file name (default from config)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Per-attempt timeout (0 = none)")
	cmd.Flags().IntVar(&opts.Retries, "retries", 0, "Additional attempts after the first failure")

	return cmd
}
