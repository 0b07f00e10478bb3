package watch

import "github.com/swarmline/swarmline/internal/domain"

// Msg is the interface for all watch TUI messages.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgPlanLoaded is sent when the ledger has been read and decoded.
//
//nolint:govet // Logical field order preferred
type MsgPlanLoaded struct {
	Plan *domain.TaskPlan
	Err  error
}

func (MsgPlanLoaded) sealed() {}

// MsgTick is sent periodically for auto-refresh.
type MsgTick struct{}

func (MsgTick) sealed() {}
