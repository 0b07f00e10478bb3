package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
	"github.com/swarmline/swarmline/internal/usecase"
)

// newPlanCommand creates the plan command for writing a fresh ledger.
func newPlanCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Ledger string
	}

	cmd := &cobra.Command{
		Use:   "plan <plan-file>",
		Short: "Create a task ledger from a YAML plan definition",
		Long: `Create a task ledger from a YAML plan definition.

Each task gets a generated ID tag and an agent binding; tasks without
an agent are bound to "Unassigned" and cannot run until edited.

Example plan file:
  project: My Project
  phases:
    - name: Build
      objective: Get it compiling
      tasks:
        - description: Install deps
          agent: dev
        - description: Compile
          agent: dev`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read plan file: %w", err)
			}

			pf, err := usecase.ParsePlanFile(data)
			if err != nil {
				return err
			}

			ledgerName := opts.Ledger
			if ledgerName == "" {
				ledgerName = c.Ledger()
			}

			uc := c.PlanProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.PlanProjectInput{
				Ledger:  ledgerName,
				Project: pf.Project,
				Phases:  pf.Phases,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %d phases, %d tasks\n",
				ledgerName, len(out.Plan.Phases), out.Plan.TotalTasks())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "Ledger file name (default from config)")

	return cmd
}
