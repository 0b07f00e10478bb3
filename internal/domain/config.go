package domain

// ConfigFileName is the configuration file name inside the repo-level
// swarmline directory and the global config directory.
const ConfigFileName = "config.toml"

// DefaultLedgerName is the ledger file used when the config does not name one.
const DefaultLedgerName = "todo.md"

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (repo + global + defaults).
	Load() (*Config, error)
}

// Config is the application configuration.
type Config struct {
	Ledger   string                 `toml:"ledger"`   // Ledger file name
	Executor ExecutorConfig         `toml:"executor"` // [executor] settings
	Log      LogConfig              `toml:"log"`      // [log] settings
	Agents   map[string]AgentConfig `toml:"agents"`   // [agents.<name>] settings
}

// ExecutorConfig holds task-execution settings from the [executor] section.
type ExecutorConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"` // 0 = no timeout
	MaxRetries     int `toml:"max_retries"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// AgentConfig holds per-agent configuration from [agents.<name>] sections.
type AgentConfig struct {
	Command string `toml:"command"` // Shell command invoked with the task description
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Ledger: DefaultLedgerName,
		Log:    LogConfig{Level: "info"},
		Agents: map[string]AgentConfig{},
	}
}
