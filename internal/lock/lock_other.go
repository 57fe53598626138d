//go:build !unix

package lock

import (
	"fmt"

	"zzz/internal/logging"
)

// Manager guards a well-known lock file (stub for non-Unix)
type Manager struct {
	path string
}

// NewManager creates a lock manager for the given lock file path
func NewManager(path string, logger *logging.Logger) *Manager {
	return &Manager{path: path}
}

// Path returns the lock file path
func (m *Manager) Path() string {
	return m.path
}

// Acquire always fails: advisory file locking is only supported on Unix
func (m *Manager) Acquire() (*Handle, error) {
	return nil, fmt.Errorf("locking is only supported on Unix")
}

// Handle represents ownership of the lock
type Handle struct{}

// Release is a no-op
func (h *Handle) Release() error {
	return nil
}
