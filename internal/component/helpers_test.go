package component

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/projtools/projtools/internal/console"
	"github.com/projtools/projtools/internal/render"
	"github.com/projtools/projtools/internal/runner"
)

// fakeRunner records commands and simulates `make <framework>`.
type fakeRunner struct {
	calls    []runner.Command
	exitCode int
	lines    []string
	err      error
}

func (f *fakeRunner) Run(_ context.Context, cmd runner.Command, onLine runner.LineFunc) (*runner.Result, error) {
	f.calls = append(f.calls, cmd)
	if f.err != nil {
		return nil, f.err
	}
	res := &runner.Result{ExitCode: f.exitCode}
	for _, l := range f.lines {
		onLine(l)
		res.Lines++
		res.Tail = append(res.Tail, l)
	}
	if len(res.Tail) > runner.DefaultTailSize {
		res.Tail = res.Tail[len(res.Tail)-runner.DefaultTailSize:]
	}
	if f.exitCode == 0 {
		if err := os.MkdirAll(filepath.Join(cmd.Dir, "frontend"), 0755); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// renderCall is one recorded RenderFile invocation.
type renderCall struct {
	name string
	dst  string
	vars render.Vars
}

// recordingRenderer wraps the embedded renderer and can fail a template.
type recordingRenderer struct {
	inner  *render.Renderer
	calls  []renderCall
	failOn string
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{inner: render.New()}
}

func (r *recordingRenderer) RenderFile(name, dst string, vars render.Vars, mode os.FileMode) error {
	r.calls = append(r.calls, renderCall{name: name, dst: dst, vars: vars})
	if name == r.failOn {
		return &render.Error{Template: name, Err: os.ErrPermission}
	}
	return r.inner.RenderFile(name, dst, vars, mode)
}

func (r *recordingRenderer) call(name string) (renderCall, bool) {
	for _, c := range r.calls {
		if c.name == name {
			return c, true
		}
	}
	return renderCall{}, false
}

type harness struct {
	deps     Deps
	renderer *recordingRenderer
	runner   *fakeRunner
	out      *bytes.Buffer
	factory  *Factory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	var out bytes.Buffer
	c := console.New(&out, &out, console.Options{LogLevel: "error"})
	h := &harness{
		renderer: newRecordingRenderer(),
		runner:   &fakeRunner{},
		out:      &out,
	}
	h.deps = Deps{Renderer: h.renderer, Runner: h.runner, Console: c}
	h.factory = NewFactory(c)
	return h
}

func mustSpec(t *testing.T, name, dir string, opts Options) Spec {
	t.Helper()
	spec, err := NewSpec(name, dir, opts)
	if err != nil {
		t.Fatalf("NewSpec(%q): %v", name, err)
	}
	return spec
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func names(components []Component) []string {
	out := make([]string, len(components))
	for i, c := range components {
		out[i] = c.Name()
	}
	return out
}
