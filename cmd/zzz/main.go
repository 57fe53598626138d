package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"zzz/internal/config"
	"zzz/internal/fsutil"
	"zzz/internal/hooks"
	"zzz/internal/lock"
	"zzz/internal/logging"
	"zzz/internal/power"
	"zzz/internal/suspend"
)

const (
	progName = "zzz"
	homepage = "https://github.com/jirutka/zzz"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.1"

type options struct {
	request    suspend.Request
	verbose    bool
	version    bool
	configPath string
}

type executeFunc func(opts options, stdout, stderr io.Writer) suspend.Status

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, execute))
}

// run parses the command line and hands the resolved options to exec.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer, exec executeFunc) int {
	name := filepath.Base(args[0])
	status := suspend.StatusOK

	cmd := newRootCmd(name, func(opts options) {
		if opts.version {
			fmt.Fprintf(stdout, "%s %s\n", progName, version)
			return
		}
		status = exec(opts, stdout, stderr)
	})
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: %v (see %s -h)\n", progName, err, name)
		return int(suspend.StatusUsage)
	}

	return int(status)
}

func newRootCmd(name string, action func(opts options)) *cobra.Command {
	opts := options{request: suspend.DefaultRequest(name)}

	cmd := &cobra.Command{
		Use:   name,
		Short: "Suspend or hibernate the system",
		Long: "Suspend or hibernate the system.\n\n" +
			"Executable hooks in the hooks directory run before and after the transition\n" +
			"with the arguments \"pre\"/\"post\" and the mode name.\n\n" +
			"Homepage: " + homepage,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			action(opts)
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	registerModeFlags(fs, &opts.request)
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Be verbose.")
	fs.BoolVarP(&opts.version, "version", "V", false, "Print program name & version and exit.")
	fs.StringVar(&opts.configPath, "config", "", "Read configuration from this file instead of "+config.SystemConfigPath()+".")

	return cmd
}

// execute wires the configured components together and performs one run
func execute(opts options, stdout, stderr io.Writer) suspend.Status {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: ERROR: %v\n", progName, err)
		return suspend.StatusGeneral
	}

	level := logging.LevelDebug
	if !opts.verbose {
		if level, err = logging.ParseLevel(cfg.Logging.Level); err != nil {
			level = logging.LevelInfo
		}
	}

	logger, err := logging.New(logging.Options{
		MinLevel: level,
		Tag:      progName,
		Stdout:   stdout,
		Stderr:   stderr,
		Syslog:   cfg.Logging.Syslog,
		FilePath: cfg.Logging.File,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: ERROR: %v\n", progName, err)
		return suspend.StatusGeneral
	}
	defer fsutil.CloseWithError(logger.Close, nil, "log file")

	runner := hooks.NewRunner(opts.request.HookEnv(cfg.HookPath), logger)
	kernel := power.Sysfs{StatePath: cfg.SleepStateFile, DiskPath: cfg.DiskModeFile}
	locks := lock.NewManager(cfg.LockFile, logger)

	status := suspend.NewExecutor(cfg.HooksDir, kernel, runner, locks, logger).Execute(opts.request)

	logger.Debug("zzz.done", fmt.Sprintf("Finished with status %d (%s)", int(status), status), map[string]interface{}{
		"status": int(status),
	})

	return status
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
