package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"text/template"

	"github.com/projtools/projtools/internal/platform"
)

//go:embed templates
var templateFS embed.FS

// Vars holds the variables available to a template, keyed by the names the
// templates use (project_name, python_package_name, ...).
type Vars map[string]any

// Error reports a failure to render or write a single template.
type Error struct {
	Template string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rendering template %s: %v", e.Template, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// funcs are available to every template. json quotes a value as a JSON
// literal, for values placed inside generated JSON documents.
var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
}

// Renderer renders templates from a file system rooted at a templates tree.
type Renderer struct {
	fsys fs.FS
}

// New returns a Renderer over the embedded template tree.
func New() *Renderer {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return &Renderer{fsys: sub}
}

// NewFS returns a Renderer over an arbitrary file system whose root holds
// the template sets.
func NewFS(fsys fs.FS) *Renderer {
	return &Renderer{fsys: fsys}
}

// Render executes the named template with vars and returns the text.
func (r *Renderer) Render(name string, vars Vars) (string, error) {
	raw, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return "", &Error{Template: name, Err: err}
	}

	tmpl, err := template.New(path.Base(name)).Funcs(funcs).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return "", &Error{Template: name, Err: fmt.Errorf("parsing: %w", err)}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(vars)); err != nil {
		return "", &Error{Template: name, Err: fmt.Errorf("executing: %w", err)}
	}
	return buf.String(), nil
}

// RenderFile renders the named template and writes it to dst with mode,
// creating parent directories as needed.
func (r *Renderer) RenderFile(name, dst string, vars Vars, mode os.FileMode) error {
	content, err := r.Render(name, vars)
	if err != nil {
		return err
	}
	if err := platform.WriteFile(dst, []byte(content), mode); err != nil {
		return &Error{Template: name, Err: err}
	}
	return nil
}
