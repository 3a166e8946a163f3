package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the minigrep home directory.
const HomeEnv = "MINIGREP_HOME"

// GetHome returns the minigrep home directory
// Priority order:
//  1. MINIGREP_HOME environment variable (if set)
//  2. <user config dir>/minigrep
//  3. .minigrep in the current working directory (fallback)
//
// The directory is not created; a missing home simply means default config.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "minigrep"), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, ".minigrep"), nil
}
