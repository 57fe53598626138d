package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"HooksDir", cfg.HooksDir, "/etc/zzz.d"},
		{"LockFile", cfg.LockFile, "/tmp/zzz.lock"},
		{"SleepStateFile", cfg.SleepStateFile, "/sys/power/state"},
		{"DiskModeFile", cfg.DiskModeFile, "/sys/power/disk"},
		{"HookPath", cfg.HookPath, DefaultHookPath},
		{"LogLevel", cfg.Logging.Level, "info"},
		{"Syslog", cfg.Logging.Syslog, true},
		{"LogFile", cfg.Logging.File, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("DefaultConfig().%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestValidation_ValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	errors := cfg.Validate()

	if len(errors) != 0 {
		t.Errorf("Validate() on default config returned errors: %v", errors)
	}
}

func TestValidation_RelativePaths(t *testing.T) {
	tests := []struct {
		path   string
		mutate func(*Config)
	}{
		{"hooks_dir", func(c *Config) { c.HooksDir = "zzz.d" }},
		{"lock_file", func(c *Config) { c.LockFile = "zzz.lock" }},
		{"sleep_state_file", func(c *Config) { c.SleepStateFile = "state" }},
		{"disk_mode_file", func(c *Config) { c.DiskModeFile = "" }},
		{"logging.file", func(c *Config) { c.Logging.File = "zzz.log" }},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			errors := cfg.Validate()
			if len(errors) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errors), errors)
			}
			if errors[0].Path != tt.path {
				t.Errorf("Validate() error path = %s, want %s", errors[0].Path, tt.path)
			}
		})
	}
}

func TestValidation_EmptyHookPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HookPath = ""

	errors := cfg.Validate()
	if len(errors) != 1 || errors[0].Path != "hook_path" {
		t.Errorf("Validate() should return a single hook_path error, got: %v", errors)
	}
}

func TestValidation_InvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	errors := cfg.Validate()
	if len(errors) == 0 {
		t.Error("Validate() should return error for invalid log level")
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
hooks_dir: /usr/local/etc/zzz.d
lock_file: /run/zzz.lock
logging:
  level: debug
  syslog: false
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.HooksDir != "/usr/local/etc/zzz.d" {
		t.Errorf("HooksDir = %s, want /usr/local/etc/zzz.d", cfg.HooksDir)
	}
	if cfg.LockFile != "/run/zzz.lock" {
		t.Errorf("LockFile = %s, want /run/zzz.lock", cfg.LockFile)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Syslog {
		t.Error("Syslog = true, want false")
	}

	// Verify defaults are preserved for unspecified fields
	if cfg.SleepStateFile != "/sys/power/state" {
		t.Errorf("SleepStateFile = %s, want /sys/power/state (default)", cfg.SleepStateFile)
	}
	if cfg.HookPath != DefaultHookPath {
		t.Errorf("HookPath = %s, want default", cfg.HookPath)
	}
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidContent := `
hooks_dir: relative/hooks
logging:
  level: loud
`
	if err := os.WriteFile(configPath, []byte(invalidContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("LoadFrom() should return error for invalid config")
	}
	if !strings.Contains(err.Error(), "2 validation errors") {
		t.Errorf("LoadFrom() error should list both problems, got: %v", err)
	}
}

func TestLoadFrom_NonexistentFile(t *testing.T) {
	_, err := LoadFrom("/nonexistent/config.yaml")
	if err == nil {
		t.Error("LoadFrom() should return error for nonexistent file")
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	malformedContent := `
hooks_dir: /etc/zzz.d
  invalid_indentation: value
lock_file: /tmp/zzz.lock
`
	if err := os.WriteFile(configPath, []byte(malformedContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("LoadFrom() should return error for malformed YAML")
	}
}

func TestLoad_MissingSystemConfig(t *testing.T) {
	t.Setenv("ZZZ_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() without a config file = %+v, want defaults", cfg)
	}
}

func TestLoad_SystemConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZZZ_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("hook_path: /bin\n"), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HookPath != "/bin" {
		t.Errorf("HookPath = %s, want /bin", cfg.HookPath)
	}
}

func TestSystemConfigPath(t *testing.T) {
	t.Setenv("ZZZ_CONFIG_DIR", "/opt/zzz")

	if got := SystemConfigPath(); got != "/opt/zzz/config.yaml" {
		t.Errorf("SystemConfigPath() = %s, want /opt/zzz/config.yaml", got)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Path:    "lock_file",
		Message: "must be an absolute path",
	}

	expected := "lock_file: must be an absolute path"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expected)
	}
}

func TestFormatValidationErrors_Single(t *testing.T) {
	errors := []ValidationError{
		{Path: "test.field", Message: "error message"},
	}

	result := formatValidationErrors(errors)
	expected := "test.field: error message"
	if result != expected {
		t.Errorf("formatValidationErrors() = %s, want %s", result, expected)
	}
}

func TestFormatValidationErrors_Empty(t *testing.T) {
	result := formatValidationErrors([]ValidationError{})
	if result != "" {
		t.Errorf("formatValidationErrors() = %s, want empty string", result)
	}
}
