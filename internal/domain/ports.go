package domain

import "time"

// LedgerStore reads and writes named ledger blobs. The ledger codec and the
// phase runner go through this port so they can be tested without real files.
type LedgerStore interface {
	// Read returns the contents of the named ledger.
	// Returns an error wrapping ErrLedgerNotFound if the ledger does not exist.
	Read(name string) ([]byte, error)

	// Write replaces the contents of the named ledger.
	Write(name string, data []byte) error

	// Exists checks whether the named ledger exists.
	Exists(name string) (bool, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
