package config

import (
	"fmt"
	"path/filepath"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePaths()...)
	errors = append(errors, c.validateHookPath()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validatePaths() []ValidationError {
	var errors []ValidationError

	paths := []struct {
		key   string
		value string
	}{
		{"hooks_dir", c.HooksDir},
		{"lock_file", c.LockFile},
		{"sleep_state_file", c.SleepStateFile},
		{"disk_mode_file", c.DiskModeFile},
	}

	for _, p := range paths {
		if !filepath.IsAbs(p.value) {
			errors = append(errors, ValidationError{
				Path:    p.key,
				Message: fmt.Sprintf("must be an absolute path, got '%s'", p.value),
			})
		}
	}

	return errors
}

func (c *Config) validateHookPath() []ValidationError {
	if c.HookPath != "" {
		return nil
	}

	return []ValidationError{{
		Path:    "hook_path",
		Message: "must not be empty",
	}}
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		errors = append(errors, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validLevels, c.Logging.Level),
		})
	}

	if c.Logging.File != "" && !filepath.IsAbs(c.Logging.File) {
		errors = append(errors, ValidationError{
			Path:    "logging.file",
			Message: fmt.Sprintf("must be an absolute path, got '%s'", c.Logging.File),
		})
	}

	return errors
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
