package component

import (
	"context"
	"os"

	"github.com/projtools/projtools/internal/console"
	"github.com/projtools/projtools/internal/render"
	"github.com/projtools/projtools/internal/runner"
)

// Component is one unit of project setup.
type Component interface {
	// Name identifies the component in logs and errors.
	Name() string
	// Create writes the component's files into the project directory.
	Create(ctx context.Context) error
}

// Renderer renders a named template into a file.
type Renderer interface {
	RenderFile(name, dst string, vars render.Vars, mode os.FileMode) error
}

// Deps are the collaborators shared by every component.
type Deps struct {
	Renderer Renderer
	Runner   runner.Runner
	Console  *console.Console
}

// base holds what every variant needs: the project Spec and its collaborators.
type base struct {
	spec Spec
	deps Deps
}

func newBase(spec Spec, deps Deps) base {
	if deps.Console == nil {
		deps.Console = console.Discard()
	}
	return base{spec: spec, deps: deps}
}

// render writes a template into the project. project_name and
// python_package_name are always available unless vars overrides them.
func (b base) render(name, dst string, vars render.Vars, mode os.FileMode) error {
	merged := render.Vars{
		"project_name":        b.spec.Name,
		"python_package_name": b.spec.PackageName,
	}
	for k, v := range vars {
		merged[k] = v
	}
	b.deps.Console.Logger().Debug("rendering template", "template", name, "dst", dst)
	return b.deps.Renderer.RenderFile(name, dst, merged, mode)
}
