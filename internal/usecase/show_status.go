package usecase

import (
	"context"

	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/ledger"
)

// ShowStatusInput contains the parameters for the status report.
type ShowStatusInput struct {
	Ledger string
}

// PhaseStatus is the per-phase slice of the status report.
type PhaseStatus struct {
	Name      string
	Objective string
	Tasks     []domain.Task
	Completed int
	Total     int
	Active    bool
}

// ShowStatusOutput is the structured project status report.
type ShowStatusOutput struct {
	Project          string
	Phases           []PhaseStatus
	Completion       float64
	OverallCompleted bool
}

// ShowStatus is the use case that reads the ledger and produces a structured
// status report for rendering.
type ShowStatus struct {
	store domain.LedgerStore
}

// NewShowStatus creates a new ShowStatus use case.
func NewShowStatus(store domain.LedgerStore) *ShowStatus {
	return &ShowStatus{store: store}
}

// Execute builds the report.
func (uc *ShowStatus) Execute(_ context.Context, in ShowStatusInput) (*ShowStatusOutput, error) {
	data, err := uc.store.Read(in.Ledger)
	if err != nil {
		return nil, err
	}
	plan, err := ledger.Decode(string(data))
	if err != nil {
		return nil, err
	}

	out := &ShowStatusOutput{
		Project:          plan.ProjectName,
		Completion:       plan.CompletionPercentage(),
		OverallCompleted: plan.OverallCompleted,
	}
	for i := range plan.Phases {
		phase := &plan.Phases[i]
		ps := PhaseStatus{
			Name:      phase.Name,
			Objective: phase.Objective,
			Tasks:     phase.Tasks,
			Total:     len(phase.Tasks),
			Active:    phase.Active,
		}
		for j := range phase.Tasks {
			if phase.Tasks[j].Completed {
				ps.Completed++
			}
		}
		out.Phases = append(out.Phases, ps)
	}
	return out, nil
}
