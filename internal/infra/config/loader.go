// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/swarmline/swarmline/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the repo-level .swarmline directory
	globalConfDir string // Global config directory (e.g. ~/.config/swarmline)
}

// NewLoader creates a new Loader rooted at the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "swarmline")
}

// Load returns the merged configuration. Repository config takes precedence
// over global config, which takes precedence over defaults.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	repoPath := filepath.Join(l.workDir, ".swarmline", domain.ConfigFileName)
	repo, err := l.loadFile(repoPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	return base, nil
}

// loadFile reads and parses a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-zero fields of overlay onto base. Agent sections
// merge by name, with overlay entries winning.
func mergeConfigs(base, overlay *domain.Config) *domain.Config {
	merged := *base

	if overlay.Ledger != "" {
		merged.Ledger = overlay.Ledger
	}
	if overlay.Executor.TimeoutSeconds != 0 {
		merged.Executor.TimeoutSeconds = overlay.Executor.TimeoutSeconds
	}
	if overlay.Executor.MaxRetries != 0 {
		merged.Executor.MaxRetries = overlay.Executor.MaxRetries
	}
	if overlay.Log.Level != "" {
		merged.Log.Level = overlay.Log.Level
	}

	if len(overlay.Agents) > 0 {
		agents := make(map[string]domain.AgentConfig, len(merged.Agents)+len(overlay.Agents))
		for name, a := range merged.Agents {
			agents[name] = a
		}
		for name, a := range overlay.Agents {
			agents[name] = a
		}
		merged.Agents = agents
	}

	return &merged
}
