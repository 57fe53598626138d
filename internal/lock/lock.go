//go:build unix

package lock

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"zzz/internal/fsutil"
	"zzz/internal/logging"
)

// Manager guards a well-known lock file. The advisory flock on the open
// descriptor is what excludes other runs; the file itself is only a rendezvous point.
type Manager struct {
	path   string
	logger *logging.Logger
}

// NewManager creates a lock manager for the given lock file path
func NewManager(path string, logger *logging.Logger) *Manager {
	return &Manager{
		path:   path,
		logger: logger,
	}
}

// Path returns the lock file path
func (m *Manager) Path() string {
	return m.path
}

// Acquire opens (creating if needed) the lock file and takes a non-blocking
// exclusive lock on it. It never waits: a held lock yields ErrLocked at once.
func (m *Manager) Acquire() (*Handle, error) {
	file, err := os.OpenFile(m.path, os.O_CREATE|os.O_RDWR, LockFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", m.path, err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		fsutil.CloseWithError(file.Close, m.logger, m.path)
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to lock %s: %w", m.path, err)
	}

	m.logger.Debug("lock.acquired", fmt.Sprintf("Acquired lock %s", m.path), map[string]interface{}{
		"path": m.path,
	})

	return &Handle{file: file, path: m.path, logger: m.logger}, nil
}

// Handle represents ownership of the lock
type Handle struct {
	file   *os.File
	path   string
	logger *logging.Logger
}

// Release removes the lock file and drops the advisory lock. Both steps are
// attempted even if the first fails. Releasing a nil or already released
// handle is a no-op.
func (h *Handle) Release() error {
	if h == nil || h.file == nil {
		return nil
	}

	var errs []error

	if err := os.Remove(h.path); err != nil {
		errs = append(errs, h.fail("lock.remove.failed", fmt.Errorf("failed to remove lock file %s: %w", h.path, err)))
	}
	if err := unix.Flock(int(h.file.Fd()), unix.LOCK_UN); err != nil {
		errs = append(errs, h.fail("lock.unlock.failed", fmt.Errorf("failed to release lock on %s: %w", h.path, err)))
	}

	fsutil.CloseWithError(h.file.Close, h.logger, h.path)
	h.file = nil

	if len(errs) == 0 {
		h.logger.Debug("lock.released", fmt.Sprintf("Released lock %s", h.path), map[string]interface{}{
			"path": h.path,
		})
	}

	return errors.Join(errs...)
}

func (h *Handle) fail(eventType string, err error) error {
	h.logger.Error(eventType, err.Error(), map[string]interface{}{
		"path": h.path,
	})
	return err
}
