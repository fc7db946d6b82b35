package component

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/projtools/projtools/internal/console"
	"github.com/projtools/projtools/internal/platform"
)

// ErrTargetExists is returned in strict mode when the project directory
// already exists and is not empty.
var ErrTargetExists = errors.New("target directory already exists")

// StepError wraps the failure of one component.
type StepError struct {
	Component string
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Component, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Plan returns the components a spec asks for, in execution order: common
// files, backend, frontend, then proxy. The proxy reads the frontend
// selection, so it always runs last.
func Plan(spec Spec, deps Deps) []Component {
	components := []Component{NewCommonFiles(spec, deps)}
	if spec.Options.Backend {
		components = append(components, NewBackend(spec, deps))
	}
	if spec.Options.Frontend {
		components = append(components, NewFrontend(spec, deps))
	}
	if spec.Options.EnableProxy {
		components = append(components, NewProxy(spec, deps))
	}
	return components
}

// Factory creates the project directory and runs components against it.
type Factory struct {
	Console *console.Console
	// RequireEmpty makes CreateProject refuse a target directory that
	// already has entries. By default an existing directory is reused.
	RequireEmpty bool
}

// NewFactory returns a Factory reporting to out.
func NewFactory(out *console.Console) *Factory {
	if out == nil {
		out = console.Discard()
	}
	return &Factory{Console: out}
}

// CreateProject ensures spec.Path exists and runs each component in order.
// It stops at the first failure and returns it as a *StepError; files
// already written are left in place.
func (f *Factory) CreateProject(ctx context.Context, spec Spec, components []Component) error {
	out := f.Console
	log := out.Logger()

	if f.RequireEmpty {
		if entries, err := os.ReadDir(spec.Path); err == nil && len(entries) > 0 {
			return fmt.Errorf("%w: %s", ErrTargetExists, spec.Path)
		}
	}

	out.Success("Creating new project: " + spec.Name)

	if err := os.MkdirAll(spec.Path, platform.DirPerm); err != nil {
		return fmt.Errorf("creating project directory %s: %w", spec.Path, err)
	}

	for _, c := range components {
		log.Info("creating component", "component", c.Name(), "project", spec.Name)
		if err := c.Create(ctx); err != nil {
			log.Error("component failed", "component", c.Name(), "error", err)
			return &StepError{Component: c.Name(), Err: err}
		}
	}

	out.Success(
		fmt.Sprintf("Project %s created!", spec.Name),
		"Next steps:",
		"  cd "+spec.Name,
	)
	return nil
}
