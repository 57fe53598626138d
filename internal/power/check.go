//go:build unix

package power

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"zzz/internal/fsutil"
)

// CheckMode verifies that the interface file at path is writable by this
// process and that its first line mentions mode.
//
// The match is a plain substring test, not a token match: it accepts the
// bracketed current mode ("[deep]") but also overlapping names, e.g. "down"
// in "platform shutdown".
func CheckMode(path, mode string) error {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	line, err := fsutil.ReadFirstLine(path, maxLineLen)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !strings.Contains(line, mode) {
		return fmt.Errorf("%w: %q is not listed in %s", ErrUnsupported, mode, path)
	}
	return nil
}
