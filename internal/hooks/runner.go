package hooks

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"zzz/internal/logging"
)

// Runner executes hook scripts one at a time, synchronously.
// There is no timeout: a hanging hook blocks the whole run.
type Runner struct {
	filter  Filter
	env     []string
	workDir string
	stdout  io.Writer
	stderr  io.Writer
	logger  *logging.Logger
}

// NewRunner creates a runner that starts hooks with exactly env as their
// environment, "/" as working directory and the process' stdout/stderr.
func NewRunner(env []string, logger *logging.Logger) *Runner {
	if env == nil {
		// A nil Env would make exec inherit the caller's environment.
		env = []string{}
	}
	return &Runner{
		filter:  NewFilter(),
		env:     env,
		workDir: "/",
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  logger,
	}
}

// Run executes a single hook script with (path, phase, mode) as its argument
// vector and waits for it. Stdin is not connected. It returns an error wrapping
// ErrHookFailed when the script cannot be started, is killed by a signal or
// exits with a non-zero status.
func (r *Runner) Run(path string, inv Invocation) error {
	r.logger.Debug("hooks.exec", fmt.Sprintf("Executing hook script: %s", path), map[string]interface{}{
		"path":  path,
		"phase": string(inv.Phase),
		"mode":  inv.Mode,
	})

	cmd := exec.Command(path, inv.Args()...)
	cmd.Env = r.env
	cmd.Dir = r.workDir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		r.logger.Error("hooks.exec.start_failed", fmt.Sprintf("Unable to execute hook script %s: %v", path, err), map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: unable to execute %s: %v", ErrHookFailed, path, err)
	}

	code := exitErr.ExitCode()
	if code < 0 {
		r.logger.Error("hooks.exec.killed", fmt.Sprintf("Hook script %s terminated (%s)", path, exitErr.ProcessState), map[string]interface{}{
			"path":   path,
			"status": exitErr.ProcessState.String(),
		})
		return fmt.Errorf("%w: %s terminated (%s)", ErrHookFailed, path, exitErr.ProcessState)
	}

	r.logger.Error("hooks.exec.failed", fmt.Sprintf("Hook script %s exited with code %d", path, code), map[string]interface{}{
		"path": path,
		"code": code,
	})
	return fmt.Errorf("%w: %s exited with code %d", ErrHookFailed, path, code)
}

// RunDir runs every accepted hook in dir in lexicographic order of name.
// A missing directory runs nothing and succeeds. A failing hook does not stop
// the remaining ones; the returned error wraps ErrHookFailed if any failed.
func (r *Runner) RunDir(dir string, inv Invocation) error {
	scripts, err := r.List(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("hooks.dir.missing", fmt.Sprintf("Hook directory %s does not exist", dir), map[string]interface{}{
				"dir": dir,
			})
			return nil
		}
		r.logger.Error("hooks.dir.unreadable", fmt.Sprintf("%s: %v", dir, err), map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
		return fmt.Errorf("list hooks in %s: %w", dir, err)
	}

	failed := 0
	for _, path := range scripts {
		if err := r.Run(path, inv); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d hooks in %s", ErrHookFailed, failed, len(scripts), dir)
	}
	return nil
}

// List returns the absolute paths of the accepted hook scripts in dir,
// sorted by name independently of the order the filesystem returns them in.
func (r *Runner) List(dir string) ([]string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	d, err := os.Open(dir) // #nosec G304 -- hook directory comes from configuration
	if err != nil {
		return nil, err
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if r.filter.Accept(path) {
			scripts = append(scripts, path)
		}
	}

	return scripts, nil
}
