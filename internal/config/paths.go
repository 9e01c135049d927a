package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the directory holding ghmcp's optional config file.
// It follows the XDG Base Directory Specification:
// - $GHMCP_CONFIG_DIR (full override)
// - $XDG_CONFIG_HOME/ghmcp
// - ~/.config/ghmcp (fallback)
func ConfigDir() (string, error) {
	// Check for full override
	if dir := os.Getenv("GHMCP_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	// Check XDG_CONFIG_HOME
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "ghmcp"), nil
	}

	// Fallback to ~/.config/ghmcp
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".config", "ghmcp"), nil
}
