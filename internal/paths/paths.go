// Package paths resolves the expbox configuration directory and the results
// root under which experiment boxes are stored.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative default for the results root. Experiments are local-first:
// every box lives under results/<exp_id>/ unless overridden.
const DefaultResultsRootName = "results"

// Environment variable names for directory overrides.
const (
	EnvConfigDir   = "EXPBOX_CONFIG_DIR"
	EnvResultsRoot = "EXPBOX_RESULTS_ROOT"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/expbox (fallback ~/.config/expbox)
// macOS:   ~/Library/Application Support/expbox
// Windows: %APPDATA%/expbox
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "expbox"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "expbox"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "expbox"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > EXPBOX_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveResultsRoot returns the results root following the precedence
// chain: flag > configYAMLValue > EXPBOX_RESULTS_ROOT env > $(CWD)/results.
//
// The CWD-relative default keeps experiments next to the code that produced
// them, which is the primary mode of use.
func ResolveResultsRoot(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvResultsRoot); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultResultsRootName), nil
}
