package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/executor"
	"github.com/swarmline/swarmline/internal/ledger"
)

// RunTaskInput contains the parameters for running a single task.
type RunTaskInput struct {
	Registry *domain.Registry
	Ledger   string
	TaskID   string
	Options  executor.Options // Timeout/retry policy, usually from config
}

// RunTaskOutput contains the result of a single-task run.
type RunTaskOutput struct {
	Result     executor.Result
	Completion float64
}

// RunTask is the use case that executes one task by ID under the configured
// timeout/retry policy. Unlike a phase run, the task's completion state does
// not gate execution: re-running a completed task is allowed.
type RunTask struct {
	store  domain.LedgerStore
	runner agentRunner
	logger *slog.Logger
}

// NewRunTask creates a new RunTask use case.
func NewRunTask(store domain.LedgerStore, runner agentRunner, logger *slog.Logger) *RunTask {
	return &RunTask{store: store, runner: runner, logger: logger}
}

// Execute runs the task and, on success, marks it complete and rewrites the
// ledger. An execution failure is reported in the Result, not as an error.
func (uc *RunTask) Execute(ctx context.Context, in RunTaskInput) (*RunTaskOutput, error) {
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

	task := mgr.Task(in.TaskID)
	if task == nil {
		return nil, fmt.Errorf("no task with ID %q", in.TaskID)
	}

	agent, ok := in.Registry.Lookup(task.Agent)
	if !ok {
		return nil, fmt.Errorf("agent %q for task %q: %w", task.Agent, task.Description, domain.ErrUnknownAgent)
	}

	uc.logger.Info("running task", "task", task.Description, "agent", task.Agent,
		"timeout", in.Options.Timeout, "max_retries", in.Options.MaxRetries)
	result := uc.runner.Run(ctx, agent, task.Description, in.Options)

	out := &RunTaskOutput{Result: result}
	if result.Success {
		mgr.SetCompletion(task.ID, true)
		if err := uc.store.Write(in.Ledger, []byte(ledger.Encode(plan))); err != nil {
			return nil, fmt.Errorf("rewrite ledger: %w", err)
		}
	} else {
		uc.logger.Warn("task failed", "task", task.Description, "error", result.ErrorMessage)
	}
	out.Completion = mgr.CompletionPercentage()
	return out, nil
}
