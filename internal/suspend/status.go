package suspend

// Status is the outcome of a run and doubles as the process exit code
type Status int

const (
	// StatusOK means every stage succeeded.
	StatusOK Status = 0
	// StatusGeneral covers lock cleanup failures and other I/O errors.
	StatusGeneral Status = 1
	// StatusUsage means the command line was malformed.
	StatusUsage Status = 10
	// StatusUnsupported means the kernel does not offer the requested mode.
	StatusUnsupported Status = 11
	// StatusLock means another run is active or the lock file is unusable.
	StatusLock Status = 12
	// StatusSuspend means writing the power state failed.
	StatusSuspend Status = 20
	// StatusHook means at least one hook failed or a hook directory was unreadable.
	StatusHook Status = 21
)

// String returns a short name for the status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusGeneral:
		return "general"
	case StatusUsage:
		return "usage"
	case StatusUnsupported:
		return "unsupported"
	case StatusLock:
		return "lock"
	case StatusSuspend:
		return "suspend"
	case StatusHook:
		return "hook"
	default:
		return "unknown"
	}
}
