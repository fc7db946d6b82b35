package electron

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/projtools/projtools/internal/console"
	"github.com/projtools/projtools/internal/manifest"
	"github.com/projtools/projtools/internal/platform"
	"github.com/projtools/projtools/internal/render"
)

// Defaults applied when an option is left empty.
const (
	DefaultAuthorName  = "Your Name"
	DefaultAuthorEmail = "your.email@example.com"
	DefaultPythonPort  = 5000
	DefaultVersion     = "0.1.0"
)

// ErrTargetExists is returned when the project directory already exists.
var ErrTargetExists = errors.New("target directory already exists")

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9._-]*$`)

// Renderer renders a named template into a file.
type Renderer interface {
	RenderFile(name, dst string, vars render.Vars, mode os.FileMode) error
}

// Options configures one Electron+Python project.
type Options struct {
	Name        string
	OutputDir   string // defaults to the working directory
	DebugMode   bool   // keep the packaged Python console visible
	AuthorName  string
	AuthorEmail string
	PythonPort  int
}

// Result describes a created project.
type Result struct {
	Dir      string
	Files    []string // relative to Dir, in creation order
	Warnings []string
}

// file maps a template to its destination inside the project.
type file struct {
	template string
	dst      string
}

// directories created before any template is rendered.
var directories = []string{
	"renderer",
	filepath.Join("python", "src"),
	filepath.Join("build", "python"),
	filepath.Join("build", "electron"),
}

var files = []file{
	{"electron_python/package.json.tmpl", "package.json"},
	{"electron_python/main.js.tmpl", "main.js"},
	{"electron_python/preload.js.tmpl", "preload.js"},
	{"electron_python/README.md.tmpl", "README.md"},
	{"electron_python/gitignore.tmpl", ".gitignore"},
	{"electron_python/index.html.tmpl", filepath.Join("renderer", "index.html")},
	{"electron_python/index.js.tmpl", filepath.Join("renderer", "index.js")},
	{"electron_python/styles.css.tmpl", filepath.Join("renderer", "styles.css")},
	{"electron_python/main.py.tmpl", filepath.Join("python", "main.py")},
	{"electron_python/requirements.txt.tmpl", filepath.Join("python", "requirements.txt")},
	{"electron_python/main.spec.tmpl", filepath.Join("python", "main.spec")},
}

// App creates Electron+Python projects.
type App struct {
	renderer Renderer
	out      *console.Console
}

// New returns an App. A nil console discards output.
func New(r Renderer, out *console.Console) *App {
	if out == nil {
		out = console.Discard()
	}
	return &App{renderer: r, out: out}
}

// CreateProject lays out <OutputDir>/<Name>. It fails with ErrTargetExists,
// without writing anything, if that directory is already present.
func (a *App) CreateProject(_ context.Context, opts Options) (*Result, error) {
	opts, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(opts.OutputDir, opts.Name)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s; choose a different project name or remove it", ErrTargetExists, dir)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}

	log := a.out.Logger()
	log.Info("creating electron-python project", "dir", dir)

	if err := os.MkdirAll(dir, platform.DirPerm); err != nil {
		return nil, fmt.Errorf("creating project directory %s: %w", dir, err)
	}
	for _, sub := range directories {
		if err := os.MkdirAll(filepath.Join(dir, sub), platform.DirPerm); err != nil {
			return nil, fmt.Errorf("creating %s: %w", sub, err)
		}
	}

	vars := render.Vars{
		"project_name":  opts.Name,
		"python_port":   opts.PythonPort,
		"debug_console": opts.DebugMode,
		"author_name":   opts.AuthorName,
		"author_email":  opts.AuthorEmail,
		"version":       DefaultVersion,
	}

	result := &Result{Dir: dir}
	for _, f := range files {
		log.Debug("rendering template", "template", f.template, "dst", f.dst)
		if err := a.renderer.RenderFile(f.template, filepath.Join(dir, f.dst), vars, platform.FilePerm); err != nil {
			return result, err
		}
		result.Files = append(result.Files, f.dst)
	}

	warnings, err := checkPackageJSON(filepath.Join(dir, "package.json"), opts)
	if err != nil {
		return result, err
	}
	result.Warnings = warnings
	return result, nil
}

// PrintNextSteps writes the post-creation instructions.
func (a *App) PrintNextSteps(opts Options, res *Result) {
	out := a.out
	out.Success(
		"Created project: "+opts.Name,
		"Location: "+res.Dir,
	)
	out.Printf("\nNext steps:\n")
	for _, step := range []string{
		"cd " + opts.Name,
		"npm install",
		"npm run postinstall  # install app dependencies",
		"cd python",
		"pip install -r requirements.txt",
		"cd ..",
		"npm start",
	} {
		out.Printf("  %s\n", step)
	}
	if opts.DebugMode {
		out.Printf("\nDebug mode is enabled: the packaged Python app keeps its console window open to show errors.\n")
	}
	if len(res.Warnings) > 0 {
		out.Printf("\nWarnings:\n")
		for _, w := range res.Warnings {
			out.Printf("  - %s\n", w)
		}
	}
}

func withDefaults(opts Options) (Options, error) {
	if !namePattern.MatchString(opts.Name) {
		return opts, fmt.Errorf("invalid project name %q: must match pattern [A-Za-z0-9_][A-Za-z0-9._-]*", opts.Name)
	}
	if opts.OutputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return opts, fmt.Errorf("resolving working directory: %w", err)
		}
		opts.OutputDir = wd
	}
	if opts.AuthorName == "" {
		opts.AuthorName = DefaultAuthorName
	}
	if opts.AuthorEmail == "" {
		opts.AuthorEmail = DefaultAuthorEmail
	}
	if opts.PythonPort == 0 {
		opts.PythonPort = DefaultPythonPort
	}
	if opts.PythonPort < 1 || opts.PythonPort > 65535 {
		return opts, fmt.Errorf("invalid python port %d", opts.PythonPort)
	}
	return opts, nil
}

// checkPackageJSON decodes the generated package.json and checks it against
// the embedded schema. A document that does not decode, or that lost the
// author values, is an error; schema issues are returned as warnings.
func checkPackageJSON(path string, opts Options) ([]string, error) {
	pkg, err := manifest.ParsePackageJSON(path)
	if err != nil {
		return nil, fmt.Errorf("generated package.json is invalid: %w", err)
	}
	if pkg.Author.Name != opts.AuthorName || pkg.Author.Email != opts.AuthorEmail {
		return nil, fmt.Errorf("generated package.json author is %q <%s>, want %q <%s>",
			pkg.Author.Name, pkg.Author.Email, opts.AuthorName, opts.AuthorEmail)
	}

	res, err := manifest.ValidateFile(manifest.SchemaPackage, path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate package.json: %v", err)}, nil
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, "package.json "+issue.String())
	}
	return warnings, nil
}
