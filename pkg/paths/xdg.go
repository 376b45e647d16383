// Package paths resolves the per-user directories viewpick reads from.
//
// Resolution order:
// 1. VIEWPICK_HOME (portable root) → $VIEWPICK_HOME/config
// 2. XDG_CONFIG_HOME → $XDG_CONFIG_HOME/viewpick
// 3. Platform default → ~/.config/viewpick
package paths

import (
	"os"
	"path/filepath"
)

const appName = "viewpick"

func home(sub, xdgVar string, fallback ...string) string {
	if root := os.Getenv("VIEWPICK_HOME"); root != "" {
		return filepath.Join(root, sub)
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(append([]string{homeDir}, append(fallback, appName)...)...)
	}
	return ""
}

// ConfigDir returns the directory holding the global viewpick.yml.
func ConfigDir() string {
	return home("config", "XDG_CONFIG_HOME", ".config")
}

// GlobalConfigFile returns the path of the global configuration file, or ""
// when no home directory can be determined.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "viewpick.yml")
}
