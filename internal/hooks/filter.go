//go:build unix

package hooks

import "golang.org/x/sys/unix"

// Filter decides whether a file is trusted enough to be run as a hook.
// Hooks run with full privileges during suspend and resume, so only regular
// files that no unprivileged user can modify qualify.
type Filter struct {
	ownerUID uint32
}

// NewFilter returns a filter that trusts files owned by the superuser
func NewFilter() Filter {
	return Filter{ownerUID: 0}
}

// Accept reports whether path is a regular file, executable by its owner,
// not writable by others and owned by the trusted uid. Symlinks are followed.
// A file that cannot be stat'ed is rejected.
func (f Filter) Accept(path string) bool {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false
	}

	return st.Mode&unix.S_IFMT == unix.S_IFREG &&
		st.Mode&unix.S_IXUSR != 0 &&
		st.Mode&unix.S_IWOTH == 0 &&
		st.Uid == f.ownerUID
}
