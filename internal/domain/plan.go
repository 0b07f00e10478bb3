// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// UnassignedAgent is the agent binding used when a task has no agent.
const UnassignedAgent = "Unassigned"

// Ledger markup constants. A task line carries machine-readable tags
// delimited by TagDelim so the ledger stays hand-editable without losing
// task identity or agent bindings.
const (
	TagDelim = "##"
	TagID    = "ID:"
	TagAgent = "AGENT:"
)

// NewID returns a generated unique identifier for tasks and phases.
func NewID() string {
	return uuid.NewString()
}

// Task is an atomic unit of work bound to exactly one agent.
// The ID is immutable once created and unique within a TaskPlan.
type Task struct {
	ID          string // Generated identifier, stable for the task's lifetime
	Description string // Free-text description
	Agent       string // Bound agent name (empty means unassigned)
	Completed   bool   // Completion flag
}

// Checkbox returns the ledger checkbox marker for the task.
func (t *Task) Checkbox() string {
	if t.Completed {
		return "[X]"
	}
	return "[ ]"
}

// DisplayLine returns the canonical ledger line for the task: the checkbox,
// the description, and the ID and AGENT tags.
func (t *Task) DisplayLine() string {
	agent := t.Agent
	if agent == "" {
		agent = UnassignedAgent
	}
	return fmt.Sprintf("%s %s %s%s%s%s %s%s%s%s",
		t.Checkbox(), t.Description,
		TagDelim, TagID, t.ID, TagDelim,
		TagDelim, TagAgent, agent, TagDelim)
}

// Phase is an ordered group of tasks with a single objective. Task order is
// significant: it is the intended execution sequence.
type Phase struct {
	ID        string
	Name      string // Unique within a plan, used as the ledger lookup key
	Objective string
	Tasks     []Task
	Active    bool
}

// AllCompleted returns true if every task in the phase is completed.
// A phase with no tasks is vacuously complete.
func (p *Phase) AllCompleted() bool {
	for i := range p.Tasks {
		if !p.Tasks[i].Completed {
			return false
		}
	}
	return true
}

// DisplayLines returns the canonical ledger lines for all tasks in order.
func (p *Phase) DisplayLines() []string {
	lines := make([]string, 0, len(p.Tasks))
	for i := range p.Tasks {
		lines = append(lines, p.Tasks[i].DisplayLine())
	}
	return lines
}

// TaskPlan is the root entity: a named project with an ordered sequence of
// phases. The plan exclusively owns its phases, which exclusively own their
// tasks.
type TaskPlan struct {
	ProjectName      string
	Phases           []Phase
	OverallCompleted bool
}

// FindPhase returns the phase with the given name, or nil if absent.
func (p *TaskPlan) FindPhase(name string) *Phase {
	for i := range p.Phases {
		if p.Phases[i].Name == name {
			return &p.Phases[i]
		}
	}
	return nil
}

// TotalTasks returns the number of tasks across all phases.
func (p *TaskPlan) TotalTasks() int {
	n := 0
	for i := range p.Phases {
		n += len(p.Phases[i].Tasks)
	}
	return n
}

// CompletedTasks returns the number of completed tasks across all phases.
func (p *TaskPlan) CompletedTasks() int {
	n := 0
	for i := range p.Phases {
		for j := range p.Phases[i].Tasks {
			if p.Phases[i].Tasks[j].Completed {
				n++
			}
		}
	}
	return n
}

// CompletionPercentage returns 100 * completed / total. An empty plan is
// vacuously complete and reports 100.0.
func (p *TaskPlan) CompletionPercentage() float64 {
	total := p.TotalTasks()
	if total == 0 {
		return 100.0
	}
	return float64(p.CompletedTasks()) / float64(total) * 100
}

// AllCompleted returns true if every task in every phase is completed.
func (p *TaskPlan) AllCompleted() bool {
	for i := range p.Phases {
		if !p.Phases[i].AllCompleted() {
			return false
		}
	}
	return true
}

// NormalizeActivation recomputes phase activation from completion state.
// The first phase is always active; each later phase is active once every
// task in the immediately preceding phase is complete. Used when a plan is
// reconstructed from a ledger, which does not persist activation.
func (p *TaskPlan) NormalizeActivation() {
	for i := range p.Phases {
		if i == 0 {
			p.Phases[i].Active = true
			continue
		}
		p.Phases[i].Active = p.Phases[i-1].AllCompleted()
	}
}
