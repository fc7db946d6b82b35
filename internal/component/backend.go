package component

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/projtools/projtools/internal/console"
	"github.com/projtools/projtools/internal/platform"
)

// Backend lays out a src/ Python package with version.py, __init__.py and
// setup.py.
type Backend struct {
	base
}

// NewBackend returns the Python backend component.
func NewBackend(spec Spec, deps Deps) *Backend {
	return &Backend{base: newBase(spec, deps)}
}

func (b *Backend) Name() string { return "backend" }

// VersionFile returns the contents of version.py for version.
func VersionFile(version string) string {
	return fmt.Sprintf("__version__ = %q\n", version)
}

func (b *Backend) Create(_ context.Context) error {
	out := b.deps.Console
	out.Section("Python backend")
	out.Table(
		console.Pair{Key: "Package", Value: filepath.Join(b.spec.Name, "src", b.spec.PackageName)},
		console.Pair{Key: "Metadata", Value: "version.py / __init__.py / setup.py"},
		console.Pair{Key: "Entry point", Value: "console_scripts"},
	)

	pkgDir := b.spec.PackageDir()
	if err := os.MkdirAll(pkgDir, platform.DirPerm); err != nil {
		return fmt.Errorf("creating package directory %s: %w", pkgDir, err)
	}

	if err := platform.WriteFile(filepath.Join(pkgDir, "version.py"), []byte(VersionFile(b.spec.Options.Version)), platform.FilePerm); err != nil {
		return err
	}
	if err := platform.WriteFile(filepath.Join(pkgDir, "__init__.py"), nil, platform.FilePerm); err != nil {
		return err
	}

	return b.render("project/setup.py.tmpl", filepath.Join(b.spec.Path, "setup.py"), nil, platform.FilePerm)
}
