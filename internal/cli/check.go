package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
	"github.com/swarmline/swarmline/internal/usecase"
)

// newCheckCommand creates the check command for marking tasks complete.
func newCheckCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Ledger string
		Line   int
		Undo   bool
	}

	cmd := &cobra.Command{
		Use:   "check [task-id]",
		Short: "Mark a task complete (or incomplete with --undo)",
		Long: `Mark a task complete by its ID tag.

With --line N, the task on the given zero-based ledger line is completed
instead; this works on ledgers without ID tags but cannot cascade phase
activation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledgerName := opts.Ledger
			if ledgerName == "" {
				ledgerName = c.Ledger()
			}
			w := cmd.OutOrStdout()

			if cmd.Flags().Changed("line") {
				if len(args) > 0 {
					return fmt.Errorf("--line and a task ID are mutually exclusive")
				}
				if opts.Undo {
					return fmt.Errorf("--undo is not supported with --line")
				}
				uc := c.EndTaskUseCase()
				out, err := uc.Execute(cmd.Context(), usecase.EndTaskInput{
					Ledger: ledgerName,
					Line:   opts.Line,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "Completed line %d: %d/%d tasks done (%.1f%%)\n",
					opts.Line, out.Completed, out.Total, out.Completion)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a task ID is required unless --line is given")
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
				Ledger:    ledgerName,
				TaskID:    args[0],
				Completed: !opts.Undo,
			})
			if err != nil {
				return err
			}
			if !out.Found {
				return fmt.Errorf("no task with ID %q", args[0])
			}

			_, _ = fmt.Fprintf(w, "Overall completion: %.1f%%\n", out.Completion)
			if out.ProjectCompleted {
				_, _ = fmt.Fprintln(w, "Project complete.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "Ledger file name (default from config)")
	cmd.Flags().IntVar(&opts.Line, "line", 0, "Complete the task on this zero-based ledger line")
	cmd.Flags().BoolVar(&opts.Undo, "undo", false, "Mark the task incomplete instead")

	return cmd
}
