package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/swarmline/swarmline/internal/app"
	"github.com/swarmline/swarmline/internal/usecase"
)

var (
	styleProject   = lipgloss.NewStyle().Bold(true)
	stylePhase     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleInactive  = lipgloss.NewStyle().Faint(true)
	styleDone      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	stylePending   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleAgentName = lipgloss.NewStyle().Faint(true)
)

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Ledger string
		Plain  bool
	}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the project status from the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ledgerName := opts.Ledger
			if ledgerName == "" {
				ledgerName = c.Ledger()
			}

			uc := c.ShowStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowStatusInput{Ledger: ledgerName})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderStatus(out, opts.Plain))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "Ledger file name (default from config)")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Disable styling")

	return cmd
}

// renderStatus formats the status report. Plain mode strips styling so the
// output is stable for scripts and tests.
func renderStatus(out *usecase.ShowStatusOutput, plain bool) string {
	style := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(style(styleProject, out.Project))
	fmt.Fprintf(&b, "  %.1f%%", out.Completion)
	if out.OverallCompleted {
		b.WriteString(style(styleDone, "  (complete)"))
	}
	b.WriteString("\n")

	for _, phase := range out.Phases {
		header := fmt.Sprintf("%s (%d/%d)", phase.Name, phase.Completed, phase.Total)
		if phase.Active {
			b.WriteString("\n" + style(stylePhase, header) + "\n")
		} else {
			b.WriteString("\n" + style(styleInactive, header+" [waiting]") + "\n")
		}
		if phase.Objective != "" {
			b.WriteString(style(styleInactive, "  "+phase.Objective) + "\n")
		}
		for _, task := range phase.Tasks {
			mark := style(stylePending, "[ ]")
			if task.Completed {
				mark = style(styleDone, "[X]")
			}
			fmt.Fprintf(&b, "  %s %s %s\n", mark, task.Description,
				style(styleAgentName, "@"+task.Agent))
		}
	}
	return b.String()
}
