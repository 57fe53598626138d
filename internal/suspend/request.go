package suspend

import (
	"path/filepath"
)

// Symbolic mode names passed to hooks
const (
	ModeNoop      = "noop"
	ModeStandby   = "standby"
	ModeSuspend   = "suspend"
	ModeHibernate = "hibernate"
)

// Request describes one power transition. An empty SleepState means a dry run;
// an empty HibernateMode leaves the disk mode untouched.
type Request struct {
	Mode          string
	SleepState    string
	HibernateMode string
}

// Requests selectable from the command line
var (
	RequestNoop            = Request{Mode: ModeNoop}
	RequestStandby         = Request{Mode: ModeStandby, SleepState: "freeze"}
	RequestSuspend         = Request{Mode: ModeSuspend, SleepState: "mem"}
	RequestHibernate       = Request{Mode: ModeHibernate, SleepState: "disk", HibernateMode: "platform"}
	RequestHybridSuspend   = Request{Mode: ModeHibernate, SleepState: "disk", HibernateMode: "suspend"}
	RequestHibernateReboot = Request{Mode: ModeHibernate, SleepState: "disk", HibernateMode: "reboot"}
)

// DefaultRequest returns the request implied by the program name:
// ZZZ hibernates, anything else suspends to RAM.
func DefaultRequest(progName string) Request {
	if filepath.Base(progName) == "ZZZ" {
		return RequestHibernate
	}
	return RequestSuspend
}

// HookEnv returns the complete environment for hook scripts
func (r Request) HookEnv(path string) []string {
	return []string{
		"PATH=" + path,
		"ZZZ_MODE=" + r.Mode,
		"ZZZ_HIBERNATE_MODE=" + r.HibernateMode,
	}
}
