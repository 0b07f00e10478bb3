// Package cli provides the command-line interface for swarmline.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
)

// Command group IDs.
const (
	groupPlan   = "plan"
	groupRun    = "run"
	groupStatus = "status"
)

// NewRootCommand creates the root command for swarmline.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "swarmline",
		Short: "Phase-oriented task orchestration CLI",
		Long: `swarmline manages a project as a markdown task ledger (todo.md):
phases run in order, each task is bound to a named agent, and the ledger
is rewritten after every completed task so progress survives a crash.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupPlan, Title: "Planning:"},
		&cobra.Group{ID: groupRun, Title: "Execution:"},
		&cobra.Group{ID: groupStatus, Title: "Inspection:"},
	)

	planCmd := newPlanCommand(c)
	planCmd.GroupID = groupPlan

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupRun

	execCmd := newExecCommand(c)
	execCmd.GroupID = groupRun

	checkCmd := newCheckCommand(c)
	checkCmd.GroupID = groupRun

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupStatus

	nextCmd := newNextCommand(c)
	nextCmd.GroupID = groupStatus

	agentsCmd := newAgentsCommand(c)
	agentsCmd.GroupID = groupStatus

	watchCmd := newWatchCommand(c)
	watchCmd.GroupID = groupStatus

	root.AddCommand(
		planCmd,
		runCmd,
		execCmd,
		checkCmd,
		statusCmd,
		nextCmd,
		agentsCmd,
		watchCmd,
	)

	return root
}
