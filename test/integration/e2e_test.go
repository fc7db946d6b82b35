//go:build integration

package integration_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projtools/projtools/internal/component"
	"github.com/projtools/projtools/internal/electron"
	"github.com/projtools/projtools/internal/manifest"
	"github.com/projtools/projtools/internal/render"
	"github.com/projtools/projtools/internal/runner"
)

// fakeMake mimics the generated Makefile targets: it prints progress and
// creates frontend/ in the working directory.
const fakeMake = `echo "make $1: scaffolding"
echo "warning: peer dependency" 1>&2
mkdir -p frontend
echo "make $1: done"
`

// TestFullFlowBackendFrontendProxy runs the whole factory with the real
// process runner against a fake make on PATH.
func TestFullFlowBackendFrontendProxy(t *testing.T) {
	env := setupTestEnv(t)
	installFakeTool(t, env, "make", fakeMake)

	spec, err := component.NewSpec("full-stack", env.OutputDir, component.Options{
		Backend:      true,
		Frontend:     true,
		FrontendType: component.Vue,
		EnableProxy:  true,
		Version:      "1.0.0",
	})
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}

	deps := component.Deps{Renderer: render.New(), Runner: runner.NewExecRunner(), Console: env.Console}
	if err := component.NewFactory(env.Console).CreateProject(context.Background(), spec, component.Plan(spec, deps)); err != nil {
		t.Fatalf("CreateProject: %v\n%s", err, env.Output)
	}

	root := spec.Path
	for _, f := range []string{"setup.py", "deploy.sh", "README.md", ".gitignore", "Makefile",
		"src/full_stack/__init__.py", "src/full_stack/version.py", "src/full_stack/proxy.py"} {
		assertFileExists(t, filepath.Join(root, f))
	}
	assertDirExists(t, filepath.Join(root, "frontend"))

	out := env.Output.String()
	for _, want := range []string{"make vue: scaffolding", "warning: peer dependency", "make vue: done"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected streamed line %q in output:\n%s", want, out)
		}
	}

	info, err := os.Stat(filepath.Join(root, "deploy.sh"))
	if err != nil {
		t.Fatalf("stat deploy.sh: %v", err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("deploy.sh should be executable, mode %v", info.Mode())
	}
}

// TestFrontendFailureKeepsPartialTree checks that a failing make stops the
// factory and leaves earlier files in place.
func TestFrontendFailureKeepsPartialTree(t *testing.T) {
	env := setupTestEnv(t)
	installFakeTool(t, env, "make", `for i in 1 2 3 4 5; do echo "line $i"; done
exit 2
`)

	spec, err := component.NewSpec("broken", env.OutputDir, component.Options{
		Backend: true, Frontend: true, EnableProxy: true,
	})
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}
	deps := component.Deps{Renderer: render.New(), Runner: runner.NewExecRunner(), Console: env.Console}
	err = component.NewFactory(env.Console).CreateProject(context.Background(), spec, component.Plan(spec, deps))

	var exitErr *runner.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *runner.ExitError, got %v", err)
	}
	if exitErr.Code != 2 {
		t.Errorf("exit code = %d, want 2", exitErr.Code)
	}
	if got, want := strings.Join(exitErr.Tail, ","), "line 3,line 4,line 5"; got != want {
		t.Errorf("tail = %q, want %q", got, want)
	}

	assertFileExists(t, filepath.Join(spec.Path, "setup.py"))
	assertFileExists(t, filepath.Join(spec.Path, "Makefile"))
	assertNotExists(t, filepath.Join(spec.PackageDir(), "proxy.py"))
}

// TestGeneratedMakefileParses runs a side-effect-free target of the
// generated Makefile with the real make.
func TestGeneratedMakefileParses(t *testing.T) {
	if _, err := exec.LookPath("make"); err != nil {
		t.Skip("make not installed")
	}
	env := setupTestEnv(t)

	spec, err := component.NewSpec("mk", env.OutputDir, component.Options{Backend: true})
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}
	if err := render.New().RenderFile("project/Makefile.tmpl", filepath.Join(spec.Path, "Makefile"),
		render.Vars{"project_name": spec.Name, "python_package_name": spec.PackageName}, 0644); err != nil {
		t.Fatalf("rendering Makefile: %v", err)
	}

	cmd := runner.Command{Name: "make", Args: []string{"clean_frontend"}, Dir: spec.Path}
	res, err := runner.NewExecRunner().Run(context.Background(), cmd, env.Console.Line)
	if err != nil {
		t.Fatalf("running make: %v", err)
	}
	if err := runner.Check(cmd, res); err != nil {
		t.Fatalf("make clean_frontend failed: %v\n%s", err, env.Output)
	}
}

// TestElectronProjectValidates creates an Electron+Python app and checks the
// generated package.json against the embedded schema.
func TestElectronProjectValidates(t *testing.T) {
	env := setupTestEnv(t)
	app := electron.New(render.New(), env.Console)

	res, err := app.CreateProject(context.Background(), electron.Options{Name: "desk", OutputDir: env.OutputDir})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if len(res.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}

	result, err := manifest.ValidateFile(manifest.SchemaPackage, filepath.Join(res.Dir, "package.json"))
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Errorf("package.json invalid: %v", result.Issues)
	}

	_, err = app.CreateProject(context.Background(), electron.Options{Name: "desk", OutputDir: env.OutputDir})
	if !errors.Is(err, electron.ErrTargetExists) {
		t.Errorf("second create: got %v, want ErrTargetExists", err)
	}
}
