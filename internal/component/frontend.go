package component

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/projtools/projtools/internal/console"
	"github.com/projtools/projtools/internal/platform"
	"github.com/projtools/projtools/internal/runner"
)

// Frontend renders the Makefile and delegates the framework scaffold to
// `make <framework>`, which creates frontend/.
type Frontend struct {
	base
	framework FrontendType
}

// NewFrontend returns the frontend component for the selected framework.
func NewFrontend(spec Spec, deps Deps) *Frontend {
	return &Frontend{base: newBase(spec, deps), framework: spec.Options.FrontendType}
}

func (f *Frontend) Name() string { return "frontend-" + string(f.framework) }

func (f *Frontend) Create(ctx context.Context) error {
	out := f.deps.Console
	out.Section(fmt.Sprintf("Frontend (%s)", strings.ToUpper(string(f.framework))))
	out.Table(
		console.Pair{Key: "Build tool", Value: "Vite"},
		console.Pair{Key: "UI framework", Value: "Tailwind CSS"},
		console.Pair{Key: "Dependencies", Value: "npm"},
	)

	if err := f.render("project/Makefile.tmpl", filepath.Join(f.spec.Path, "Makefile"), nil, platform.FilePerm); err != nil {
		return err
	}

	if err := f.runMake(ctx, string(f.framework)); err != nil {
		return err
	}

	out.Success(
		fmt.Sprintf("%s project initialized", f.framework),
		"Directory: "+filepath.Join(f.spec.Path, "frontend"),
		"Start the dev server: cd frontend && npm run dev",
	)
	return nil
}

// runMake runs a Makefile target in the project directory, streaming its
// output to the console. A non-zero exit is returned as *runner.ExitError.
func (f *Frontend) runMake(ctx context.Context, target string) error {
	out := f.deps.Console
	cmd := runner.Command{Name: "make", Args: []string{target}, Dir: f.spec.Path}

	out.Dim(fmt.Sprintf("Executing %s (this may take a few minutes)...", cmd))
	out.Command(cmd.String())

	res, err := f.deps.Runner.Run(ctx, cmd, out.Line)
	if err != nil {
		out.Failure(fmt.Sprintf("Error executing %s: %v", cmd, err))
		return fmt.Errorf("scaffolding %s frontend: %w", f.framework, err)
	}

	if err := runner.Check(cmd, res); err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			lines := []string{
				fmt.Sprintf("%s project creation failed", strings.ToUpper(string(f.framework))),
				fmt.Sprintf("Exit code: %d", exitErr.Code),
				"Recent output:",
			}
			for _, l := range exitErr.Tail {
				lines = append(lines, "  "+l)
			}
			out.Failure(lines...)
		}
		return err
	}
	return nil
}
