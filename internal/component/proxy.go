package component

import (
	"context"
	"path/filepath"

	"github.com/projtools/projtools/internal/platform"
	"github.com/projtools/projtools/internal/render"
)

// Proxy renders src/<pkg>/proxy.py, a small server that fronts the API
// and, when a frontend was requested, serves the built UI.
type Proxy struct {
	base
}

// NewProxy returns the proxy component.
func NewProxy(spec Spec, deps Deps) *Proxy {
	return &Proxy{base: newBase(spec, deps)}
}

func (p *Proxy) Name() string { return "proxy" }

func (p *Proxy) Create(_ context.Context) error {
	vars := render.Vars{
		"frontend": p.spec.Options.Frontend,
		"vue":      p.spec.Options.FrontendType == Vue,
	}
	dst := filepath.Join(p.spec.PackageDir(), "proxy.py")
	return p.render("project/proxy.py.tmpl", dst, vars, platform.FilePerm)
}
