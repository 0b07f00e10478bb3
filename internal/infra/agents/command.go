// Package agents provides agent implementations backed by shell commands.
// Each [agents.<name>] config section becomes a registry entry whose command
// receives the task description as its final argument.
package agents

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/swarmline/swarmline/internal/domain"
)

// Ensure CommandAgent satisfies the agent capability.
var _ domain.Agent = (*CommandAgent)(nil)

// CommandAgent runs a configured shell command for each task. The task
// description and any extra arguments are appended as positional arguments.
type CommandAgent struct {
	name    string
	command string
	dir     string
}

// NewCommandAgent creates a CommandAgent running in the given directory.
func NewCommandAgent(name, command, dir string) *CommandAgent {
	return &CommandAgent{name: name, command: command, dir: dir}
}

// Name returns the agent's registry name.
func (a *CommandAgent) Name() string {
	return a.name
}

// Invoke runs the command with the description appended. The combined output
// is the agent's return value; a non-zero exit is a failure carrying the
// output tail.
func (a *CommandAgent) Invoke(ctx context.Context, description string, args ...any) (any, error) {
	argv := []string{a.command + ` "$@"`, a.name, description}
	for _, arg := range args {
		argv = append(argv, fmt.Sprint(arg))
	}

	// #nosec G204 - a.command comes from the user's own config file
	cmd := exec.CommandContext(ctx, "sh", append([]string{"-c"}, argv...)...)
	if a.dir != "" {
		cmd.Dir = a.dir
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w: %s", a.name, err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// BuildRegistry creates an agent registry from the configured agent sections.
func BuildRegistry(cfg *domain.Config, dir string) (*domain.Registry, error) {
	reg := domain.NewRegistry()
	for name, ac := range cfg.Agents {
		if ac.Command == "" {
			return nil, fmt.Errorf("agent %q has no command: %w", name, domain.ErrInvalidAgent)
		}
		if err := reg.Register(name, NewCommandAgent(name, ac.Command, dir)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
