// Package executor provides controlled execution of a single agent
// invocation: optional scheduled start, optional timeout, and optional
// bounded retries with exponential backoff.
//
// All outcomes are encoded in the Result record; no error crosses the
// executor boundary. A timed-out invocation is abandoned, not killed: the
// worker goroutine keeps running in the background and its result is
// discarded.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/swarmline/swarmline/internal/domain"
)

// maxBackoff caps the exponential retry delay.
const maxBackoff = 30 * time.Second

// Options configures a single execution.
type Options struct {
	Args       []any         // Extra arguments passed through to the agent
	StartAt    time.Time     // Earliest start time; zero means immediately
	Timeout    time.Duration // Per-attempt timeout; zero means no timeout
	MaxRetries int           // Additional attempts after the first failure
}

// Result is the executor's complete contract with its caller.
type Result struct {
	Value         any           // Agent return value; nil on failure
	ErrorMessage  string        // Last failure message; empty on success
	Started       time.Time     // When the first attempt began
	Ended         time.Time     // When the final attempt finished
	ExecutionTime time.Duration // Wall-clock time across all attempts
	RetriesUsed   int           // Failed attempts consumed
	Success       bool
	TimedOut      bool // Last failure was a timeout
}

// Executor runs agent invocations under the concurrency contract.
// The clock and sleep hooks exist for tests.
type Executor struct {
	clock domain.Clock
	sleep func(time.Duration)
}

// New creates an Executor using the system clock.
func New() *Executor {
	return &Executor{clock: domain.RealClock{}, sleep: time.Sleep}
}

// WithClock sets a custom clock (useful for testing).
func (e *Executor) WithClock(c domain.Clock) *Executor {
	e.clock = c
	return e
}

// WithSleep sets a custom sleep function (useful for testing).
func (e *Executor) WithSleep(fn func(time.Duration)) *Executor {
	e.sleep = fn
	return e
}

// Run executes the agent with the task description under the configured
// options. If StartAt is in the future, the calling goroutine sleeps until
// then. A failed or timed-out attempt is retried up to MaxRetries times with
// exponential backoff; the last failure is what gets surfaced.
func (e *Executor) Run(ctx context.Context, agent domain.Agent, description string, opts Options) Result {
	if !opts.StartAt.IsZero() {
		if wait := opts.StartAt.Sub(e.clock.Now()); wait > 0 {
			e.sleep(wait)
		}
	}

	res := Result{Started: e.clock.Now()}

	var value any
	var lastErr error
	var timedOut bool
	attempts := opts.MaxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		value, timedOut, lastErr = e.attempt(ctx, agent, description, opts)
		if lastErr == nil {
			break
		}
		if opts.MaxRetries > 0 {
			res.RetriesUsed = attempt + 1
		}
		if attempt < attempts-1 {
			e.sleep(backoff(attempt))
		}
	}

	res.Ended = e.clock.Now()
	res.ExecutionTime = res.Ended.Sub(res.Started)
	if lastErr != nil {
		res.ErrorMessage = lastErr.Error()
		res.TimedOut = timedOut
		return res
	}
	res.Success = true
	res.Value = value
	return res
}

// attempt runs the agent once on its own goroutine and waits for it to
// finish, time out, or be cancelled. The result channel is buffered so an
// abandoned worker can complete without blocking.
func (e *Executor) attempt(ctx context.Context, agent domain.Agent, description string, opts Options) (value any, timedOut bool, err error) {
	type outcome struct {
		value any
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("agent panicked: %v", r)}
			}
		}()
		v, invokeErr := agent.Invoke(ctx, description, opts.Args...)
		done <- outcome{value: v, err: invokeErr}
	}()

	var timeoutCh <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case out := <-done:
		if out.err != nil {
			return nil, false, fmt.Errorf("task failed: %w", out.err)
		}
		return out.value, false, nil
	case <-timeoutCh:
		return nil, true, fmt.Errorf("task exceeded timeout of %s", opts.Timeout)
	case <-ctx.Done():
		return nil, false, fmt.Errorf("task cancelled: %w", ctx.Err())
	}
}

// backoff returns min(2^attempt, 30) seconds.
func backoff(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}
