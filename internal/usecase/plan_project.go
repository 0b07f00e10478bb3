package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/ledger"
	"gopkg.in/yaml.v3"
)

// TaskSpec describes one task in a declarative plan definition.
type TaskSpec struct {
	Description string `yaml:"description"`
	Agent       string `yaml:"agent"`
	Completed   bool   `yaml:"completed"`
}

// PhaseSpec describes one phase in a declarative plan definition.
type PhaseSpec struct {
	Name      string     `yaml:"name"`
	Objective string     `yaml:"objective"`
	Tasks     []TaskSpec `yaml:"tasks"`
}

// PlanFile is the YAML document accepted by `swarmline plan`.
type PlanFile struct {
	Project string      `yaml:"project"`
	Phases  []PhaseSpec `yaml:"phases"`
}

// ParsePlanFile parses a YAML plan definition.
func ParsePlanFile(data []byte) (*PlanFile, error) {
	var pf PlanFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}
	if pf.Project == "" {
		return nil, fmt.Errorf("plan file has no project name")
	}
	return &pf, nil
}

// PlanProjectInput contains the parameters for creating a plan.
type PlanProjectInput struct {
	Ledger  string // Ledger name to write
	Project string // Project name
	Phases  []PhaseSpec
}

// PlanProjectOutput contains the result of creating a plan.
type PlanProjectOutput struct {
	Plan       *domain.TaskPlan
	LedgerText string
}

// PlanProject is the use case that turns phase descriptions into a TaskPlan
// with generated identifiers, activates the first phase, and writes the
// ledger through the store.
type PlanProject struct {
	store  domain.LedgerStore
	logger *slog.Logger
}

// NewPlanProject creates a new PlanProject use case.
func NewPlanProject(store domain.LedgerStore, logger *slog.Logger) *PlanProject {
	return &PlanProject{store: store, logger: logger}
}

// Execute builds and persists the plan. Tasks without an agent get the
// unassigned binding; such tasks cannot run until a human edits the ledger.
func (uc *PlanProject) Execute(_ context.Context, in PlanProjectInput) (*PlanProjectOutput, error) {
	if in.Project == "" {
		return nil, fmt.Errorf("project name is required")
	}

	plan := &domain.TaskPlan{ProjectName: in.Project}
	for _, ps := range in.Phases {
		phase := domain.Phase{
			ID:        domain.NewID(),
			Name:      ps.Name,
			Objective: ps.Objective,
		}
		for _, ts := range ps.Tasks {
			agent := ts.Agent
			if agent == "" {
				agent = domain.UnassignedAgent
			}
			phase.Tasks = append(phase.Tasks, domain.Task{
				ID:          domain.NewID(),
				Description: ts.Description,
				Agent:       agent,
				Completed:   ts.Completed,
			})
		}
		plan.Phases = append(plan.Phases, phase)
	}

	if len(plan.Phases) > 0 {
		plan.Phases[0].Active = true
	}
	plan.OverallCompleted = plan.AllCompleted()

	// Guard against duplicate generated IDs before persisting.
	if _, err := domain.NewPlanManager(plan); err != nil {
		return nil, err
	}

	text := ledger.Encode(plan)
	if err := uc.store.Write(in.Ledger, []byte(text)); err != nil {
		return nil, fmt.Errorf("write ledger: %w", err)
	}

	uc.logger.Info("plan created", "project", in.Project, "phases", len(plan.Phases), "tasks", plan.TotalTasks())
	return &PlanProjectOutput{Plan: plan, LedgerText: text}, nil
}
