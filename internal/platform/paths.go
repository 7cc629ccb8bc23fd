package platform

import (
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory holding the running binary. When the
// executable path cannot be determined (some containerized or test
// environments), the current working directory is used instead.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return os.Getwd()
	}

	// Resolve symlinked install locations so the settings file lands next
	// to the real binary.
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}
