package hooks

import "errors"

// Phase tells a hook whether the transition is about to happen or has just completed
type Phase string

const (
	// PhasePre runs before the power transition.
	PhasePre Phase = "pre"
	// PhasePost runs after the system resumed.
	PhasePost Phase = "post"
)

// ErrHookFailed marks a hook that could not be started, was killed, or exited non-zero
var ErrHookFailed = errors.New("hook script failed")

// Invocation holds the positional arguments passed to every hook of one phase
type Invocation struct {
	Phase Phase
	Mode  string
}

// Args returns a fresh argument list for one hook; argv[0] is set by the runner.
func (i Invocation) Args() []string {
	return []string{string(i.Phase), i.Mode}
}
