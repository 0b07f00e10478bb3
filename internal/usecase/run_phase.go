// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/executor"
	"github.com/swarmline/swarmline/internal/ledger"
)

// agentRunner abstracts the task executor for testing.
type agentRunner interface {
	Run(ctx context.Context, agent domain.Agent, description string, opts executor.Options) executor.Result
}

// RunPhaseInput contains the parameters for running a phase.
type RunPhaseInput struct {
	Registry *domain.Registry // Agent name -> agent; read-only
	Ledger   string           // Ledger name in the store
	Phase    string           // Phase name to run
}

// TaskReport is the per-task record accumulated by a phase run.
type TaskReport struct {
	Result      executor.Result
	TaskID      string
	Description string
	Agent       string
}

// RunPhaseOutput contains the result of a phase run.
type RunPhaseOutput struct {
	Reports     []TaskReport
	Completion  float64 // Overall completion percentage after the run
	NothingToDo bool    // The phase had no incomplete tasks
}

// RunPhase is the use case that executes all incomplete tasks in a named
// phase, strictly sequentially and in ledger-declared order. Each successful
// task is marked complete and the ledger is rewritten in place before the
// next task starts, so a crash never loses finished work.
//
// Tasks run with no timeout and no retry; the timeout-capable executor
// policy is reserved for direct task invocations.
type RunPhase struct {
	store  domain.LedgerStore
	runner agentRunner
	logger *slog.Logger
}

// NewRunPhase creates a new RunPhase use case.
func NewRunPhase(store domain.LedgerStore, runner agentRunner, logger *slog.Logger) *RunPhase {
	return &RunPhase{store: store, runner: runner, logger: logger}
}

// Execute runs the phase.
// Preconditions:
//   - The ledger exists (ErrLedgerNotFound otherwise)
//   - The phase exists in it (ErrPhaseNotFound otherwise)
//   - The phase has at least one task (ErrEmptyPhase otherwise)
//
// A task bound to an agent missing from the registry aborts the run with
// ErrUnknownAgent before any later task executes. A task whose execution
// fails is reported but does not abort the remaining tasks.
func (uc *RunPhase) Execute(ctx context.Context, in RunPhaseInput) (*RunPhaseOutput, error) {
	exists, err := uc.store.Exists(in.Ledger)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", in.Ledger, domain.ErrLedgerNotFound)
	}

	data, err := uc.store.Read(in.Ledger)
	if err != nil {
		return nil, err
	}
	plan, err := ledger.Decode(string(data))
	if err != nil {
		return nil, err
	}

	phase := plan.FindPhase(in.Phase)
	if phase == nil {
		return nil, fmt.Errorf("%q: %w", in.Phase, domain.ErrPhaseNotFound)
	}
	if len(phase.Tasks) == 0 {
		return nil, fmt.Errorf("%q: %w", in.Phase, domain.ErrEmptyPhase)
	}

	mgr, err := domain.NewPlanManager(plan)
	if err != nil {
		return nil, err
	}

	out := &RunPhaseOutput{}
	for i := range phase.Tasks {
		task := &phase.Tasks[i]
		if task.Completed {
			continue
		}

		agent, ok := in.Registry.Lookup(task.Agent)
		if !ok || task.Agent == "" {
			return nil, fmt.Errorf("agent %q for task %q: %w", task.Agent, task.Description, domain.ErrUnknownAgent)
		}

		uc.logger.Info("running task", "phase", in.Phase, "task", task.Description, "agent", task.Agent)
		result := uc.runner.Run(ctx, agent, task.Description, executor.Options{})

		out.Reports = append(out.Reports, TaskReport{
			TaskID:      task.ID,
			Description: task.Description,
			Agent:       task.Agent,
			Result:      result,
		})

		if !result.Success {
			uc.logger.Warn("task failed", "task", task.Description, "error", result.ErrorMessage)
			continue
		}

		mgr.SetCompletion(task.ID, true)
		if err := uc.store.Write(in.Ledger, []byte(ledger.Encode(plan))); err != nil {
			return nil, fmt.Errorf("rewrite ledger: %w", err)
		}
		uc.logger.Info("task completed", "task", task.Description, "completion", mgr.CompletionPercentage())
	}

	out.NothingToDo = len(out.Reports) == 0
	out.Completion = plan.CompletionPercentage()
	return out, nil
}
