package usecase

import (
	"context"

	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/ledger"
)

// NextTaskInput contains the parameters for the next-task query.
type NextTaskInput struct {
	Ledger string
	Agent  string
}

// NextTaskOutput contains the query result. Task is nil when no task is
// available for the agent.
type NextTaskOutput struct {
	Task *domain.Task
}

// NextTask is the use case that finds the first incomplete task bound to an
// agent, honoring the single priority policy: active phases in order, then
// declaration order within the phase.
type NextTask struct {
	store domain.LedgerStore
}

// NewNextTask creates a new NextTask use case.
func NewNextTask(store domain.LedgerStore) *NextTask {
	return &NextTask{store: store}
}

// Execute runs the query.
func (uc *NextTask) Execute(_ context.Context, in NextTaskInput) (*NextTaskOutput, error) {
	data, err := uc.store.Read(in.Ledger)
	if err != nil {
		return nil, err
	}
	plan, err := ledger.Decode(string(data))
	if err != nil {
		return nil, err
	}

	mgr, err := domain.NewPlanManager(plan)
	if err != nil {
		return nil, err
	}

	task := mgr.NextAvailableTask(in.Agent)
	if task == nil {
		return &NextTaskOutput{}, nil
	}
	copied := *task
	return &NextTaskOutput{Task: &copied}, nil
}
