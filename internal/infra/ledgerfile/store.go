// Package ledgerfile provides a file-based implementation of the LedgerStore
// port. Ledger names resolve to files under a base directory; writes replace
// the whole file via temp-file-and-rename so readers never observe a partial
// ledger.
package ledgerfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/swarmline/swarmline/internal/domain"
)

// Ensure Store implements domain.LedgerStore.
var _ domain.LedgerStore = (*Store)(nil)

// Store implements domain.LedgerStore on the local filesystem.
type Store struct {
	dir string
}

// New creates a Store rooted at the given directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Read returns the contents of the named ledger.
func (s *Store) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, domain.ErrLedgerNotFound)
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	return data, nil
}

// Write replaces the named ledger atomically.
func (s *Store) Write(name string, data []byte) error {
	path := s.path(name)
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write ledger temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename ledger temp file: %w", err)
	}
	return nil
}

// Exists checks whether the named ledger exists.
func (s *Store) Exists(name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat ledger: %w", err)
	}
	return true, nil
}
