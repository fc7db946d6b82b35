// Package doctor reports whether the external tools that generated
// projects depend on are available on PATH.
package doctor

import (
	"fmt"
	"io"
	"os/exec"
)

// Tool is an external binary used by a generated project.
type Tool struct {
	Name    string
	Purpose string
}

// Tools lists the binaries checked by Run, in report order.
var Tools = []Tool{
	{Name: "make", Purpose: "frontend scaffolding (Makefile targets)"},
	{Name: "npm", Purpose: "frontend and electron dependencies"},
	{Name: "node", Purpose: "frontend tooling and electron"},
	{Name: "python3", Purpose: "backend and electron python process"},
	{Name: "pip", Purpose: "python dependencies"},
}

// LookFunc resolves a binary name to a path.
type LookFunc func(name string) (string, error)

// Report is the outcome of a Run.
type Report struct {
	Found   map[string]string
	Missing []string
}

// OK reports whether every tool was found.
func (r *Report) OK() bool { return len(r.Missing) == 0 }

// Run checks each tool with look (exec.LookPath when nil) and writes one
// line per tool to w.
func Run(w io.Writer, tools []Tool, look LookFunc) *Report {
	if look == nil {
		look = exec.LookPath
	}
	rep := &Report{Found: make(map[string]string, len(tools))}

	fmt.Fprintln(w, "Toolchain check:")
	for _, t := range tools {
		path, err := look(t.Name)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s not found (needed for %s)\n", t.Name, t.Purpose)
			rep.Missing = append(rep.Missing, t.Name)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", t.Name, path)
		rep.Found[t.Name] = path
	}

	if rep.OK() {
		fmt.Fprintf(w, "\n  [ OK ] All %d tools found\n", len(tools))
	} else {
		fmt.Fprintf(w, "\n  %d missing tool(s). Generated projects may not build until they are installed.\n", len(rep.Missing))
	}
	return rep
}
