package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Permission modes used for generated files.
const (
	DirPerm        os.FileMode = 0755
	FilePerm       os.FileMode = 0644
	ExecutablePerm os.FileMode = 0755
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// WriteFile writes data to path, creating parent directories as needed.
// Modes wider than the process umask allows are applied with Chmod after
// the write, so an executable script ends up with exactly mode.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if mode != FilePerm {
		if err := Chmod(path, mode); err != nil {
			return fmt.Errorf("setting mode %o on %s: %w", mode, path, err)
		}
	}
	return nil
}
