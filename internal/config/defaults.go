package config

// Build-time defaults. They can be overridden with -ldflags "-X zzz/internal/config.DefaultHooksDir=...".
var (
	DefaultHooksDir       = "/etc/zzz.d"
	DefaultLockFile       = "/tmp/zzz.lock"
	DefaultSleepStateFile = "/sys/power/state"
	DefaultDiskModeFile   = "/sys/power/disk"
)

// DefaultHookPath is the PATH handed to hook scripts
const DefaultHookPath = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		HooksDir:       DefaultHooksDir,
		LockFile:       DefaultLockFile,
		SleepStateFile: DefaultSleepStateFile,
		DiskModeFile:   DefaultDiskModeFile,
		HookPath:       DefaultHookPath,
		Logging: LoggingConfig{
			Level:  "info",
			Syslog: true,
		},
	}
}
