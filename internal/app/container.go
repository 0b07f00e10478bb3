// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/executor"
	"github.com/swarmline/swarmline/internal/infra/agents"
	"github.com/swarmline/swarmline/internal/infra/config"
	"github.com/swarmline/swarmline/internal/infra/ledgerfile"
	"github.com/swarmline/swarmline/internal/infra/logging"
	"github.com/swarmline/swarmline/internal/usecase"
)

// Container holds the port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store        domain.LedgerStore
	Clock        domain.Clock
	ConfigLoader domain.ConfigLoader
	Registry     *domain.Registry

	Executor *executor.Executor
	Logger   *slog.Logger
	Config   *domain.Config

	// WorkDir is the directory holding the ledger and .swarmline config.
	WorkDir string

	closeLog func() error
}

// New creates a Container rooted at the given working directory. The merged
// config decides the ledger name, log level, and agent registry.
func New(dir string) (*Container, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = cwd
	}

	configLoader := config.NewLoader(dir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(filepath.Join(dir, ".swarmline"), logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		// Logging failure must not block the CLI; fall back to discard.
		logger = logging.Discard()
		closeLog = func() error { return nil }
	}

	registry, err := agents.BuildRegistry(cfg, dir)
	if err != nil {
		return nil, err
	}

	return &Container{
		Store:        ledgerfile.New(dir),
		Clock:        domain.RealClock{},
		ConfigLoader: configLoader,
		Registry:     registry,
		Executor:     executor.New(),
		Logger:       logger,
		Config:       cfg,
		WorkDir:      dir,
		closeLog:     closeLog,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(store domain.LedgerStore, registry *domain.Registry, cfg *domain.Config, logger *slog.Logger) *Container {
	return &Container{
		Store:        store,
		Clock:        domain.RealClock{},
		Registry:     registry,
		Executor:     executor.New(),
		Logger:       logger,
		Config:       cfg,
		closeLog:     func() error { return nil },
	}
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.closeLog != nil {
		return c.closeLog()
	}
	return nil
}

// Ledger returns the configured ledger name.
func (c *Container) Ledger() string {
	if c.Config != nil && c.Config.Ledger != "" {
		return c.Config.Ledger
	}
	return domain.DefaultLedgerName
}

// ExecutorOptions translates the [executor] config section into run options.
func (c *Container) ExecutorOptions() executor.Options {
	opts := executor.Options{}
	if c.Config != nil {
		opts.Timeout = time.Duration(c.Config.Executor.TimeoutSeconds) * time.Second
		opts.MaxRetries = c.Config.Executor.MaxRetries
	}
	return opts
}

// UseCase factory methods

// PlanProjectUseCase returns a new PlanProject use case.
func (c *Container) PlanProjectUseCase() *usecase.PlanProject {
	return usecase.NewPlanProject(c.Store, c.Logger)
}

// RunPhaseUseCase returns a new RunPhase use case.
func (c *Container) RunPhaseUseCase() *usecase.RunPhase {
	return usecase.NewRunPhase(c.Store, c.Executor, c.Logger)
}

// RunTaskUseCase returns a new RunTask use case.
func (c *Container) RunTaskUseCase() *usecase.RunTask {
	return usecase.NewRunTask(c.Store, c.Executor, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Store, c.Logger)
}

// EndTaskUseCase returns a new EndTask use case.
func (c *Container) EndTaskUseCase() *usecase.EndTask {
	return usecase.NewEndTask(c.Store, c.Logger)
}

// ShowStatusUseCase returns a new ShowStatus use case.
func (c *Container) ShowStatusUseCase() *usecase.ShowStatus {
	return usecase.NewShowStatus(c.Store)
}

// NextTaskUseCase returns a new NextTask use case.
func (c *Container) NextTaskUseCase() *usecase.NextTask {
	return usecase.NewNextTask(c.Store)
}
