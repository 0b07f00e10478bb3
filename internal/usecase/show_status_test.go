package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarmline/swarmline/internal/domain"
)

func TestShowStatus_Report(t *testing.T) {
	text := `# Demo

## Build
[X] Install deps ##ID:t1## ##AGENT:Dev##
[ ] Compile ##ID:t2## ##AGENT:Dev##

## Ship
[ ] Release ##ID:t3## ##AGENT:Ops##

**Overall Completion: 33.3%**
`
	store := newMemStore()
	store.files["todo.md"] = []byte(text)
	uc := NewShowStatus(store)

	out, err := uc.Execute(context.Background(), ShowStatusInput{Ledger: "todo.md"})
	require.NoError(t, err)

	assert.Equal(t, "Demo", out.Project)
	assert.InDelta(t, 33.3, out.Completion, 0.1)
	assert.False(t, out.OverallCompleted)

	require.Len(t, out.Phases, 2)
	build := out.Phases[0]
	assert.Equal(t, "Build", build.Name)
	assert.Equal(t, 1, build.Completed)
	assert.Equal(t, 2, build.Total)
	assert.True(t, build.Active)

	ship := out.Phases[1]
	assert.Equal(t, "Ship", ship.Name)
	assert.Equal(t, 0, ship.Completed)
	assert.False(t, ship.Active)
}

func TestShowStatus_MissingLedger(t *testing.T) {
	uc := NewShowStatus(newMemStore())
	_, err := uc.Execute(context.Background(), ShowStatusInput{Ledger: "todo.md"})
	assert.ErrorIs(t, err, domain.ErrLedgerNotFound)
}
