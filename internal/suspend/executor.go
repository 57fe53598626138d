package suspend

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"zzz/internal/hooks"
	"zzz/internal/lock"
	"zzz/internal/logging"
)

// DryRunPause stands in for the transition when no sleep state is requested
const DryRunPause = 5 * time.Second

// Hook subdirectories kept for compatibility with the Void Linux layout
const (
	preHooksSubdir  = "suspend"
	postHooksSubdir = "resume"
)

// Kernel performs the privileged part of a transition
type Kernel interface {
	SupportsState(state string) error
	SupportsDiskMode(mode string) error
	SetDiskMode(mode string) error
	// EnterState returns once the system has resumed.
	EnterState(state string) error
}

// HookRunner runs every hook of a directory
type HookRunner interface {
	RunDir(dir string, inv hooks.Invocation) error
}

// Executor drives one run: validate, lock, pre hooks, transition, post hooks, unlock
type Executor struct {
	hooksDir string
	kernel   Kernel
	hooks    HookRunner
	locks    *lock.Manager
	logger   *logging.Logger
	sleep    func(time.Duration)
}

// NewExecutor creates a new suspend executor
func NewExecutor(hooksDir string, kernel Kernel, runner HookRunner, locks *lock.Manager, logger *logging.Logger) *Executor {
	return &Executor{
		hooksDir: hooksDir,
		kernel:   kernel,
		hooks:    runner,
		locks:    locks,
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// Execute performs the request and returns the resulting status.
// When several stages fail, the last recorded failure wins.
func (e *Executor) Execute(req Request) Status {
	if status := e.validate(req); status != StatusOK {
		return status
	}

	handle, err := e.locks.Acquire()
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			e.logger.Error("suspend.lock.held", "Another instance of zzz is running", map[string]interface{}{
				"lock_file": e.locks.Path(),
			})
		} else {
			e.logger.Error("suspend.lock.failed", err.Error(), map[string]interface{}{
				"lock_file": e.locks.Path(),
			})
		}
		return StatusLock
	}

	status := e.transition(req)

	if err := handle.Release(); err != nil {
		status = StatusGeneral
	}

	return status
}

// validate checks the requested modes before anything is locked or written
func (e *Executor) validate(req Request) Status {
	if req.SleepState != "" {
		if err := e.kernel.SupportsState(req.SleepState); err != nil {
			e.logger.Error("suspend.state.unsupported", fmt.Sprintf("Sleep state %s is not supported: %v", req.SleepState, err), map[string]interface{}{
				"sleep_state": req.SleepState,
			})
			return StatusUnsupported
		}
	}

	if req.HibernateMode != "" {
		if err := e.kernel.SupportsDiskMode(req.HibernateMode); err != nil {
			e.logger.Error("suspend.disk_mode.unsupported", fmt.Sprintf("Hibernate mode %s is not supported: %v", req.HibernateMode, err), map[string]interface{}{
				"hibernate_mode": req.HibernateMode,
			})
			return StatusUnsupported
		}
	}

	return StatusOK
}

// transition runs the hooks around the power state change. It is only called
// with the lock held; a failed write skips the post hooks.
func (e *Executor) transition(req Request) Status {
	status := StatusOK

	if !e.runHooks(hooks.PhasePre, req.Mode) {
		status = StatusHook
	}

	if req.HibernateMode != "" {
		if err := e.kernel.SetDiskMode(req.HibernateMode); err != nil {
			e.logger.Error("suspend.disk_mode.failed", fmt.Sprintf("Failed to set hibernate mode %s: %v", req.HibernateMode, err), map[string]interface{}{
				"hibernate_mode": req.HibernateMode,
			})
			return StatusSuspend
		}
	}

	e.logger.Info("suspend.enter", fmt.Sprintf("Going to %s (%s)", req.Mode, req.SleepState), map[string]interface{}{
		"mode":        req.Mode,
		"sleep_state": req.SleepState,
	})

	if req.SleepState == "" {
		e.sleep(DryRunPause)
	} else if err := e.kernel.EnterState(req.SleepState); err != nil {
		e.logger.Error("suspend.state.failed", fmt.Sprintf("Failed to %s system: %v", req.Mode, err), map[string]interface{}{
			"mode":        req.Mode,
			"sleep_state": req.SleepState,
		})
		return StatusSuspend
	}

	e.logger.Info("suspend.resumed", fmt.Sprintf("System resumed from %s (%s)", req.Mode, req.SleepState), map[string]interface{}{
		"mode":        req.Mode,
		"sleep_state": req.SleepState,
	})

	if !e.runHooks(hooks.PhasePost, req.Mode) {
		status = StatusHook
	}

	return status
}

// runHooks runs the primary hook directory and its compatibility subdirectory
func (e *Executor) runHooks(phase hooks.Phase, mode string) bool {
	subdir := preHooksSubdir
	if phase == hooks.PhasePost {
		subdir = postHooksSubdir
	}

	inv := hooks.Invocation{Phase: phase, Mode: mode}
	ok := true
	for _, dir := range []string{e.hooksDir, filepath.Join(e.hooksDir, subdir)} {
		if err := e.hooks.RunDir(dir, inv); err != nil {
			ok = false
		}
	}
	return ok
}
