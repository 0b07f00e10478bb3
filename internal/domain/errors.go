package domain

import "errors"

// Domain errors.
var (
	ErrLedgerNotFound  = errors.New("ledger not found")
	ErrMalformedLedger = errors.New("malformed ledger")
	ErrPhaseNotFound   = errors.New("phase not found")
	ErrEmptyPhase      = errors.New("phase has no tasks")
	ErrDuplicateTaskID = errors.New("duplicate task id")
	ErrUnknownAgent    = errors.New("unknown agent")
	ErrInvalidAgent    = errors.New("invalid agent")
)
