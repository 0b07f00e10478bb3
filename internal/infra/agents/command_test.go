package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarmline/swarmline/internal/domain"
)

func TestCommandAgent_Invoke(t *testing.T) {
	agent := NewCommandAgent("Echo", "echo", t.TempDir())

	out, err := agent.Invoke(context.Background(), "Install deps")
	require.NoError(t, err)

	assert.Equal(t, "Install deps\n", out)
}

func TestCommandAgent_Invoke_ExtraArgs(t *testing.T) {
	agent := NewCommandAgent("Echo", "echo", "")

	out, err := agent.Invoke(context.Background(), "desc", "extra", 7)
	require.NoError(t, err)

	assert.Equal(t, "desc extra 7\n", out)
}

func TestCommandAgent_Invoke_Failure(t *testing.T) {
	agent := NewCommandAgent("Broken", "false", "")

	_, err := agent.Invoke(context.Background(), "task")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestBuildRegistry(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Agents = map[string]domain.AgentConfig{
		"Dev": {Command: "echo dev"},
		"QA":  {Command: "echo qa"},
	}

	reg, err := BuildRegistry(cfg, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Dev", "QA"}, reg.Names())
	_, ok := reg.Lookup("Dev")
	assert.True(t, ok)
}

func TestBuildRegistry_MissingCommand(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Agents = map[string]domain.AgentConfig{"Bad": {}}

	_, err := BuildRegistry(cfg, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAgent)
}
