//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/projtools/projtools/internal/console"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // PROJTOOLS_HOME, holds config.yaml
	OutputDir string // parent of generated projects
	BinDir    string // prepended to PATH for fake tools
	Output    *bytes.Buffer
	Console   *console.Console
}

// setupTestEnv creates isolated temp directories and points PROJTOOLS_HOME
// at one of them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("integration tests use POSIX shell scripts")
	}

	env := &testEnv{
		HomeDir:   t.TempDir(),
		OutputDir: t.TempDir(),
		BinDir:    t.TempDir(),
		Output:    &bytes.Buffer{},
	}
	env.Console = console.New(env.Output, env.Output, console.Options{LogLevel: "debug"})

	t.Setenv("PROJTOOLS_HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return env
}

// installFakeTool writes an executable shell script named name into BinDir.
func installFakeTool(t *testing.T, env *testEnv, name, script string) {
	t.Helper()
	writeFile(t, filepath.Join(env.BinDir, name), "#!/bin/sh\n"+script)
	if err := os.Chmod(filepath.Join(env.BinDir, name), 0755); err != nil {
		t.Fatalf("chmod %s: %v", name, err)
	}
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s to not exist", path)
	}
}
