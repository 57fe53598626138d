package config

// Config represents the complete zzz configuration
type Config struct {
	HooksDir       string        `yaml:"hooks_dir"`
	LockFile       string        `yaml:"lock_file"`
	SleepStateFile string        `yaml:"sleep_state_file"`
	DiskModeFile   string        `yaml:"disk_mode_file"`
	HookPath       string        `yaml:"hook_path"`
	Logging        LoggingConfig `yaml:"logging"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Syslog bool   `yaml:"syslog"`
	File   string `yaml:"file"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}
