package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/ledger"
)

// EndTaskInput contains the parameters for the line-number completion API.
type EndTaskInput struct {
	Ledger string
	Line   int // Zero-based line number of the task line
}

// EndTaskOutput contains the result of a line-number completion.
type EndTaskOutput struct {
	Completion float64
	Completed  int
	Total      int
}

// EndTask is the legacy mutation path: it marks a task complete by line
// number with a checkbox substitution instead of decoding the plan. Kept for
// ledger dialects that omit ID tags.
type EndTask struct {
	store  domain.LedgerStore
	logger *slog.Logger
}

// NewEndTask creates a new EndTask use case.
func NewEndTask(store domain.LedgerStore, logger *slog.Logger) *EndTask {
	return &EndTask{store: store, logger: logger}
}

// Execute rewrites the given line and reports checkbox-derived progress.
func (uc *EndTask) Execute(_ context.Context, in EndTaskInput) (*EndTaskOutput, error) {
	data, err := uc.store.Read(in.Ledger)
	if err != nil {
		return nil, err
	}

	text, err := ledger.CompleteLine(string(data), in.Line)
	if err != nil {
		return nil, fmt.Errorf("complete line: %w", err)
	}

	if err := uc.store.Write(in.Ledger, []byte(text)); err != nil {
		return nil, fmt.Errorf("rewrite ledger: %w", err)
	}

	completed, total := ledger.CountProgress(text)
	uc.logger.Info("task line completed", "line", in.Line, "completed", completed, "total", total)
	return &EndTaskOutput{
		Completion: ledger.Percentage(completed, total),
		Completed:  completed,
		Total:      total,
	}, nil
}
