package configdir

import (
	"os"
	"path/filepath"
)

const defaultConfigDir = "/etc/zzz"

// ConfigDir resolves the configuration directory respecting the ZZZ_CONFIG_DIR override
func ConfigDir() string {
	if env := os.Getenv("ZZZ_CONFIG_DIR"); env != "" {
		if abs, err := filepath.Abs(env); err == nil {
			return abs
		}
	}
	return defaultConfigDir
}
