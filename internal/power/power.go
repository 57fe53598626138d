// Package power talks to the kernel's power management interface files,
// conventionally /sys/power/state and /sys/power/disk.
package power

import (
	"errors"
	"fmt"
	"os"
)

// ErrUnsupported is returned when the kernel does not list a requested mode
var ErrUnsupported = errors.New("mode not supported")

// maxLineLen bounds how much of an interface file is inspected
const maxLineLen = 63

// WriteState writes mode to the interface file at path in a single unbuffered
// write. For the sleep-state file the write returns only after the system has
// resumed.
func WriteState(path, mode string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) // #nosec G302 G304 -- kernel interface path from configuration
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if _, err := f.WriteString(mode); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Sysfs binds the validator and writer to the sleep-state and disk-mode files
type Sysfs struct {
	StatePath string
	DiskPath  string
}

// SupportsState checks a sleep state against the sleep-state file
func (s Sysfs) SupportsState(state string) error {
	return CheckMode(s.StatePath, state)
}

// SupportsDiskMode checks a hibernation mode against the disk-mode file
func (s Sysfs) SupportsDiskMode(mode string) error {
	return CheckMode(s.DiskPath, mode)
}

// SetDiskMode selects how the hibernation image is handled
func (s Sysfs) SetDiskMode(mode string) error {
	return WriteState(s.DiskPath, mode)
}

// EnterState triggers the transition and blocks until resume
func (s Sysfs) EnterState(state string) error {
	return WriteState(s.StatePath, state)
}
