package component

import (
	"context"
	"path/filepath"

	"github.com/projtools/projtools/internal/console"
	"github.com/projtools/projtools/internal/platform"
	"github.com/projtools/projtools/internal/render"
)

// GitignoreContent is written verbatim to every project's .gitignore.
const GitignoreContent = "web/\nlogs/\n__pycache__/\ndist/\nbuild/\npasted/\n"

// CommonFiles writes deploy.sh, .gitignore and README.md.
type CommonFiles struct {
	base
}

// NewCommonFiles returns the component shared by all project types.
func NewCommonFiles(spec Spec, deps Deps) *CommonFiles {
	return &CommonFiles{base: newBase(spec, deps)}
}

func (c *CommonFiles) Name() string { return "common" }

func (c *CommonFiles) Create(_ context.Context) error {
	root := c.spec.Path
	vars := render.Vars{"frontend": c.spec.Options.Frontend}

	if err := c.render("project/deploy.sh.tmpl", filepath.Join(root, "deploy.sh"), vars, platform.ExecutablePerm); err != nil {
		return err
	}

	if err := platform.WriteFile(filepath.Join(root, ".gitignore"), []byte(GitignoreContent), platform.FilePerm); err != nil {
		return err
	}

	if err := c.render("project/README.md.tmpl", filepath.Join(root, "README.md"), vars, platform.FilePerm); err != nil {
		return err
	}

	out := c.deps.Console
	out.Section("Deployment")
	out.Table(
		console.Pair{Key: "Packaging script", Value: "./deploy.sh"},
		console.Pair{Key: "Permissions", Value: "chmod 755 deploy.sh"},
		console.Pair{Key: "Install", Value: "pip install -e ."},
	)
	return nil
}
