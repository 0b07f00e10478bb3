// Package ledger implements the text-ledger codec: it serializes a TaskPlan
// to the todo-file format and parses a ledger back into a TaskPlan.
//
// The codec emits a single canonical dialect: every task line carries both an
// ID tag and an AGENT tag, and both are mandatory on decode. Ledgers are
// hand-editable; humans may toggle checkboxes directly and free-form lines
// (such as the trailing completion percentage) are ignored on decode.
package ledger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/swarmline/swarmline/internal/domain"
)

const (
	projectPrefix = "# "
	phasePrefix   = "## "
)

var (
	// Accepts hand-edited variants: "[ ]", "[]", "[x]", "[X]".
	taskLineRe = regexp.MustCompile(`^\[([ xX]?)\]\s*(.*)$`)
	idTagRe    = regexp.MustCompile(regexp.QuoteMeta(domain.TagDelim+domain.TagID) + `([^#]+)` + regexp.QuoteMeta(domain.TagDelim))
	agentTagRe = regexp.MustCompile(regexp.QuoteMeta(domain.TagDelim+domain.TagAgent) + `([^#]+)` + regexp.QuoteMeta(domain.TagDelim))
)

// Encode serializes the plan to ledger text. Output is deterministic: phases
// and tasks appear in stored order, followed by the overall completion line.
func Encode(plan *domain.TaskPlan) string {
	var sb strings.Builder

	sb.WriteString(projectPrefix + plan.ProjectName + "\n\n")

	for i := range plan.Phases {
		phase := &plan.Phases[i]
		sb.WriteString(phasePrefix + phase.Name + "\n")
		for _, line := range phase.DisplayLines() {
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("**Overall Completion: %.1f%%**\n", plan.CompletionPercentage()))
	return sb.String()
}

// Decode parses ledger text into a TaskPlan. The first line must be the
// project-name header. Lines starting with the phase marker open a new
// phase; lines matching the checkbox pattern are tasks and must carry both
// tags; any other non-blank line is ignored. Phase activation and the
// overall-completion flag are re-derived from the parsed completion state.
func Decode(text string) (*domain.TaskPlan, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], projectPrefix) {
		return nil, fmt.Errorf("first line is not a project header: %w", domain.ErrMalformedLedger)
	}

	plan := &domain.TaskPlan{
		ProjectName: strings.TrimSpace(strings.TrimPrefix(lines[0], projectPrefix)),
	}

	for i, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, phasePrefix) {
			plan.Phases = append(plan.Phases, domain.Phase{
				ID:   domain.NewID(),
				Name: strings.TrimSpace(strings.TrimPrefix(line, phasePrefix)),
			})
			continue
		}

		m := taskLineRe.FindStringSubmatch(line)
		if m == nil {
			// Forward-compatible with free-form content, e.g. the
			// completion-percentage trailer.
			continue
		}

		task, err := parseTaskLine(m[1], m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		if len(plan.Phases) == 0 {
			return nil, fmt.Errorf("line %d: task before any phase header: %w", i+2, domain.ErrMalformedLedger)
		}
		phase := &plan.Phases[len(plan.Phases)-1]
		phase.Tasks = append(phase.Tasks, task)
	}

	plan.NormalizeActivation()
	plan.OverallCompleted = plan.AllCompleted()
	return plan, nil
}

// parseTaskLine builds a task from the checkbox state and the line remainder.
// Both the ID and AGENT tags are mandatory in the canonical dialect; a
// ledger without them cannot preserve task identity across reloads.
func parseTaskLine(checkbox, rest string) (domain.Task, error) {
	idMatch := idTagRe.FindStringSubmatch(rest)
	if idMatch == nil {
		return domain.Task{}, fmt.Errorf("task line missing ID tag: %w", domain.ErrMalformedLedger)
	}
	agentMatch := agentTagRe.FindStringSubmatch(rest)
	if agentMatch == nil {
		return domain.Task{}, fmt.Errorf("task line missing AGENT tag: %w", domain.ErrMalformedLedger)
	}

	desc := idTagRe.ReplaceAllString(rest, "")
	desc = agentTagRe.ReplaceAllString(desc, "")

	return domain.Task{
		ID:          strings.TrimSpace(idMatch[1]),
		Description: strings.TrimSpace(desc),
		Agent:       strings.TrimSpace(agentMatch[1]),
		Completed:   checkbox == "x" || checkbox == "X",
	}, nil
}
