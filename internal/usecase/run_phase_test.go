package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/executor"
	"github.com/swarmline/swarmline/internal/infra/logging"
	"github.com/swarmline/swarmline/internal/ledger"
)

// memStore is an in-memory LedgerStore for use case tests.
type memStore struct {
	files    map[string][]byte
	writeErr error
	writes   int
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string][]byte)}
}

func (s *memStore) Read(name string) ([]byte, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrLedgerNotFound)
	}
	return data, nil
}

func (s *memStore) Write(name string, data []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.files[name] = data
	return nil
}

func (s *memStore) Exists(name string) (bool, error) {
	_, ok := s.files[name]
	return ok, nil
}

var _ domain.LedgerStore = (*memStore)(nil)

// stubRunner invokes the agent inline and maps the outcome to a Result,
// bypassing the real executor's timing machinery.
type stubRunner struct {
	calls []string
}

func (r *stubRunner) Run(ctx context.Context, agent domain.Agent, description string, opts executor.Options) executor.Result {
	r.calls = append(r.calls, description)
	value, err := agent.Invoke(ctx, description, opts.Args...)
	if err != nil {
		return executor.Result{ErrorMessage: err.Error()}
	}
	return executor.Result{Success: true, Value: value}
}

const sampleLedger = `# Demo

## Build
[ ] Install deps ##ID:t1## ##AGENT:Dev##
[ ] Compile ##ID:t2## ##AGENT:Dev##

## Ship
[ ] Release ##ID:t3## ##AGENT:Ops##

**Overall Completion: 0.0%**
`

func okAgent(_ context.Context, description string, _ ...any) (any, error) {
	return "done: " + description, nil
}

func newTestRegistry(t *testing.T, names ...string) *domain.Registry {
	t.Helper()
	reg := domain.NewRegistry()
	for _, name := range names {
		require.NoError(t, reg.Register(name, okAgent))
	}
	return reg
}

func TestRunPhase_CompletesAllTasks(t *testing.T) {
	store := newMemStore()
	store.files["todo.md"] = []byte(sampleLedger)
	runner := &stubRunner{}
	uc := NewRunPhase(store, runner, logging.Discard())

	out, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: newTestRegistry(t, "Dev", "Ops"),
		Ledger:   "todo.md",
		Phase:    "Build",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Install deps", "Compile"}, runner.calls)
	require.Len(t, out.Reports, 2)
	assert.True(t, out.Reports[0].Result.Success)
	assert.True(t, out.Reports[1].Result.Success)
	assert.False(t, out.NothingToDo)
	assert.InDelta(t, 66.7, out.Completion, 0.1)

	// The ledger was rewritten after each task, not once at the end.
	assert.Equal(t, 2, store.writes)
	plan, err := ledger.Decode(string(store.files["todo.md"]))
	require.NoError(t, err)
	assert.True(t, plan.Phases[0].Tasks[0].Completed)
	assert.True(t, plan.Phases[0].Tasks[1].Completed)
	assert.False(t, plan.Phases[1].Tasks[0].Completed)
}

func TestRunPhase_ActivatesNextPhaseOnCompletion(t *testing.T) {
	store := newMemStore()
	store.files["todo.md"] = []byte(sampleLedger)
	uc := NewRunPhase(store, &stubRunner{}, logging.Discard())

	_, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: newTestRegistry(t, "Dev", "Ops"),
		Ledger:   "todo.md",
		Phase:    "Build",
	})
	require.NoError(t, err)

	plan, err := ledger.Decode(string(store.files["todo.md"]))
	require.NoError(t, err)
	assert.True(t, plan.Phases[1].Active)
}

func TestRunPhase_UnknownAgentAbortsBeforeLaterTasks(t *testing.T) {
	store := newMemStore()
	store.files["todo.md"] = []byte(sampleLedger)
	runner := &stubRunner{}
	uc := NewRunPhase(store, runner, logging.Discard())

	// "Dev" is missing, so the first task must abort the run before the
	// second one is attempted.
	_, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: newTestRegistry(t, "Ops"),
		Ledger:   "todo.md",
		Phase:    "Build",
	})
	require.ErrorIs(t, err, domain.ErrUnknownAgent)
	assert.Empty(t, runner.calls)
	assert.Equal(t, 0, store.writes)
}

func TestRunPhase_FailedTaskDoesNotAbortRemaining(t *testing.T) {
	store := newMemStore()
	store.files["todo.md"] = []byte(sampleLedger)
	runner := &stubRunner{}
	uc := NewRunPhase(store, runner, logging.Discard())

	reg := domain.NewRegistry()
	require.NoError(t, reg.Register("Dev", func(_ context.Context, description string, _ ...any) (any, error) {
		if description == "Install deps" {
			return nil, errors.New("network down")
		}
		return "ok", nil
	}))

	out, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: reg,
		Ledger:   "todo.md",
		Phase:    "Build",
	})
	require.NoError(t, err)

	require.Len(t, out.Reports, 2)
	assert.False(t, out.Reports[0].Result.Success)
	assert.Contains(t, out.Reports[0].Result.ErrorMessage, "network down")
	assert.True(t, out.Reports[1].Result.Success)

	plan, err := ledger.Decode(string(store.files["todo.md"]))
	require.NoError(t, err)
	assert.False(t, plan.Phases[0].Tasks[0].Completed)
	assert.True(t, plan.Phases[0].Tasks[1].Completed)
}

func TestRunPhase_SkipsCompletedTasks(t *testing.T) {
	text := `# Demo

## Build
[X] Install deps ##ID:t1## ##AGENT:Dev##
[ ] Compile ##ID:t2## ##AGENT:Dev##

**Overall Completion: 50.0%**
`
	store := newMemStore()
	store.files["todo.md"] = []byte(text)
	runner := &stubRunner{}
	uc := NewRunPhase(store, runner, logging.Discard())

	out, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: newTestRegistry(t, "Dev"),
		Ledger:   "todo.md",
		Phase:    "Build",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Compile"}, runner.calls)
	assert.InDelta(t, 100.0, out.Completion, 0.01)
}

func TestRunPhase_NothingToDo(t *testing.T) {
	text := `# Demo

## Build
[X] Install deps ##ID:t1## ##AGENT:Dev##

**Overall Completion: 100.0%**
`
	store := newMemStore()
	store.files["todo.md"] = []byte(text)
	uc := NewRunPhase(store, &stubRunner{}, logging.Discard())

	out, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: newTestRegistry(t, "Dev"),
		Ledger:   "todo.md",
		Phase:    "Build",
	})
	require.NoError(t, err)
	assert.True(t, out.NothingToDo)
	assert.Empty(t, out.Reports)

	// The stored ledger is untouched.
	assert.Equal(t, 0, store.writes)
	assert.Equal(t, text, string(store.files["todo.md"]))
}

func TestRunPhase_LedgerNotFound(t *testing.T) {
	uc := NewRunPhase(newMemStore(), &stubRunner{}, logging.Discard())

	_, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: newTestRegistry(t),
		Ledger:   "todo.md",
		Phase:    "Build",
	})
	assert.ErrorIs(t, err, domain.ErrLedgerNotFound)
}

func TestRunPhase_PhaseNotFound(t *testing.T) {
	store := newMemStore()
	store.files["todo.md"] = []byte(sampleLedger)
	uc := NewRunPhase(store, &stubRunner{}, logging.Discard())

	_, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: newTestRegistry(t),
		Ledger:   "todo.md",
		Phase:    "Deploy",
	})
	assert.ErrorIs(t, err, domain.ErrPhaseNotFound)
}

func TestRunPhase_EmptyPhase(t *testing.T) {
	text := `# Demo

## Build

**Overall Completion: 100.0%**
`
	store := newMemStore()
	store.files["todo.md"] = []byte(text)
	uc := NewRunPhase(store, &stubRunner{}, logging.Discard())

	_, err := uc.Execute(context.Background(), RunPhaseInput{
		Registry: newTestRegistry(t),
		Ledger:   "todo.md",
		Phase:    "Build",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyPhase)
}
