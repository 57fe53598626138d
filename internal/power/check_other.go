//go:build !unix

package power

import "fmt"

// CheckMode always fails: kernel power interfaces are only available on Unix
func CheckMode(path, mode string) error {
	return fmt.Errorf("%w: power interfaces are only supported on Unix", ErrUnsupported)
}
