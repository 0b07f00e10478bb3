package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/ledger"
)

// CompleteTaskInput contains the parameters for toggling a task by ID.
type CompleteTaskInput struct {
	Ledger    string
	TaskID    string
	Completed bool
}

// CompleteTaskOutput contains the result of a completion update.
type CompleteTaskOutput struct {
	Completion       float64
	Found            bool // False if the task ID is unknown; caller decides severity
	ProjectCompleted bool
}

// CompleteTask is the use case that updates a task's completion flag through
// the plan manager and rewrites the ledger. An unknown task ID is reported
// through the Found flag, not as an error.
type CompleteTask struct {
	store  domain.LedgerStore
	logger *slog.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(store domain.LedgerStore, logger *slog.Logger) *CompleteTask {
	return &CompleteTask{store: store, logger: logger}
}

// Execute toggles the task and persists the plan.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
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

	if !mgr.SetCompletion(in.TaskID, in.Completed) {
		uc.logger.Warn("task not found", "task_id", in.TaskID)
		return &CompleteTaskOutput{Found: false, Completion: mgr.CompletionPercentage()}, nil
	}

	if err := uc.store.Write(in.Ledger, []byte(ledger.Encode(plan))); err != nil {
		return nil, fmt.Errorf("rewrite ledger: %w", err)
	}

	uc.logger.Info("task updated", "task_id", in.TaskID, "completed", in.Completed)
	return &CompleteTaskOutput{
		Found:            true,
		Completion:       mgr.CompletionPercentage(),
		ProjectCompleted: plan.OverallCompleted,
	}, nil
}
