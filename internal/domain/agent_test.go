package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoRunner is a run-capable agent shape for testing.
type echoRunner struct{}

func (echoRunner) Run(_ context.Context, description string, _ ...any) (any, error) {
	return "ran: " + description, nil
}

func TestAdaptAgent_Func(t *testing.T) {
	fn := func(_ context.Context, description string, _ ...any) (any, error) {
		return "called: " + description, nil
	}

	agent, err := AdaptAgent(fn)
	require.NoError(t, err)

	out, err := agent.Invoke(context.Background(), "task")
	require.NoError(t, err)
	assert.Equal(t, "called: task", out)
}

func TestAdaptAgent_RunCapable(t *testing.T) {
	agent, err := AdaptAgent(echoRunner{})
	require.NoError(t, err)

	out, err := agent.Invoke(context.Background(), "task")
	require.NoError(t, err)
	assert.Equal(t, "ran: task", out)
}

func TestAdaptAgent_AlreadyAgent(t *testing.T) {
	var underlying Agent = AgentFunc(func(_ context.Context, _ string, _ ...any) (any, error) {
		return nil, nil
	})

	agent, err := AdaptAgent(underlying)
	require.NoError(t, err)
	assert.NotNil(t, agent)
}

func TestAdaptAgent_Invalid(t *testing.T) {
	_, err := AdaptAgent(42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAgent)
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register("Dev", echoRunner{})
	require.NoError(t, err)

	agent, ok := reg.Lookup("Dev")
	require.True(t, ok)
	out, err := agent.Invoke(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "ran: x", out)

	_, ok = reg.Lookup("QA")
	assert.False(t, ok)
}

func TestRegistry_Register_Invalid(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register("Bad", struct{}{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAgent)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Names_Sorted(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("QA", echoRunner{}))
	require.NoError(t, reg.Register("Dev", echoRunner{}))

	assert.Equal(t, []string{"Dev", "QA"}, reg.Names())
}
