package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarmline/swarmline/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestLoader_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "todo.md", cfg.Ledger)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 0, cfg.Executor.TimeoutSeconds)
	assert.Empty(t, cfg.Agents)
}

func TestLoader_RepoConfig(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, filepath.Join(workDir, ".swarmline"), `
ledger = "plan.md"

[executor]
timeout_seconds = 120
max_retries = 3

[agents.Dev]
command = "claude -p"

[agents.QA]
command = "pytest-agent"
`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "plan.md", cfg.Ledger)
	assert.Equal(t, 120, cfg.Executor.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Executor.MaxRetries)
	require.Len(t, cfg.Agents, 2)
	assert.Equal(t, "claude -p", cfg.Agents["Dev"].Command)
}

func TestLoader_RepoOverridesGlobal(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, globalDir, `
ledger = "global.md"

[log]
level = "debug"

[agents.Dev]
command = "global-dev"
`)
	writeConfig(t, filepath.Join(workDir, ".swarmline"), `
ledger = "repo.md"

[agents.Dev]
command = "repo-dev"

[agents.Ops]
command = "ops-agent"
`)

	loader := NewLoaderWithGlobalDir(workDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "repo.md", cfg.Ledger)
	assert.Equal(t, "debug", cfg.Log.Level, "global setting survives when repo is silent")
	assert.Equal(t, "repo-dev", cfg.Agents["Dev"].Command)
	assert.Equal(t, "ops-agent", cfg.Agents["Ops"].Command)
}

func TestLoader_MalformedToml(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, filepath.Join(workDir, ".swarmline"), "ledger = [broken")

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	_, err := loader.Load()

	assert.Error(t, err)
}
