package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"zzz/internal/logging"
)

// ReadFirstLine returns the first line of a file, without the trailing newline,
// reading at most limit bytes.
func ReadFirstLine(path string, limit int) (string, error) {
	f, err := os.Open(filepath.Clean(path)) // #nosec G304 -- kernel interface paths come from configuration
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(io.LimitReader(f, int64(limit))).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.ErrUnexpectedEOF
	}

	return strings.TrimSuffix(line, "\n"), nil
}

// CloseWithError closes a resource and logs any error if a logger is provided.
// This is useful for defer statements where close errors should be handled.
func CloseWithError(closer func() error, logger *logging.Logger, resource string) {
	if err := closer(); err != nil {
		if logger != nil {
			logger.Warn("close_failed", fmt.Sprintf("Failed to close %s: %v", resource, err), map[string]interface{}{
				"resource": resource,
				"error":    err.Error(),
			})
		}
	}
}
