package domain

import (
	"context"
	"fmt"
	"sort"
)

// Agent is an opaque worker capability that performs the actual work for a
// task. The description is the task's free text; extra args pass through
// untouched.
type Agent interface {
	Invoke(ctx context.Context, description string, args ...any) (any, error)
}

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(ctx context.Context, description string, args ...any) (any, error)

// Invoke calls the function.
func (f AgentFunc) Invoke(ctx context.Context, description string, args ...any) (any, error) {
	return f(ctx, description, args...)
}

// RunCapable is the alternate agent shape: a value exposing a Run capability
// instead of being directly invocable.
type RunCapable interface {
	Run(ctx context.Context, description string, args ...any) (any, error)
}

// runAgent adapts a RunCapable value to the Agent interface.
type runAgent struct {
	r RunCapable
}

func (a runAgent) Invoke(ctx context.Context, description string, args ...any) (any, error) {
	return a.r.Run(ctx, description, args...)
}

// AdaptAgent resolves an arbitrary value into an Agent. Accepts values that
// already implement Agent, plain functions with the Invoke signature, and
// RunCapable values. Anything else fails with ErrInvalidAgent. Resolution
// happens once here, not per call.
func AdaptAgent(v any) (Agent, error) {
	switch a := v.(type) {
	case Agent:
		return a, nil
	case func(ctx context.Context, description string, args ...any) (any, error):
		return AgentFunc(a), nil
	case RunCapable:
		return runAgent{r: a}, nil
	default:
		return nil, fmt.Errorf("agent %T is neither invocable nor run-capable: %w", v, ErrInvalidAgent)
	}
}

// Registry maps agent names to invocable agents. The phase runner only reads
// from it.
type Registry struct {
	agents map[string]Agent
}

// NewRegistry creates an empty agent registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]Agent)}
}

// Register resolves the value into an Agent and stores it under the given
// name. Returns ErrInvalidAgent if the value has no usable invocation shape.
func (r *Registry) Register(name string, v any) error {
	agent, err := AdaptAgent(v)
	if err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}
	r.agents[name] = agent
	return nil
}

// Lookup returns the agent registered under the given name.
func (r *Registry) Lookup(name string) (Agent, bool) {
	agent, ok := r.agents[name]
	return agent, ok
}

// Names returns the registered agent names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	return len(r.agents)
}
