package runner

import (
	"context"
	"fmt"
	"strings"
)

// DefaultTailSize is the number of trailing output lines kept for diagnostics.
const DefaultTailSize = 3

// Command describes an external process to run.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // appended to the current environment
}

// String renders the command as it would be typed in a shell.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// LineFunc receives each output line, without its trailing newline.
type LineFunc func(line string)

// Result captures the outcome of a finished command.
type Result struct {
	ExitCode int
	Lines    int      // total lines forwarded
	Tail     []string // last lines of output, oldest first
}

// Runner runs a command to completion, streaming its output.
//
// A process that starts and exits non-zero is not an error: the exit code is
// reported in the Result. The error return is reserved for failures to start
// or read from the process.
type Runner interface {
	Run(ctx context.Context, cmd Command, onLine LineFunc) (*Result, error)
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command string
	Code    int
	Tail    []string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

// Check turns a non-zero Result into an *ExitError.
func Check(cmd Command, res *Result) error {
	if res == nil || res.ExitCode == 0 {
		return nil
	}
	return &ExitError{Command: cmd.String(), Code: res.ExitCode, Tail: res.Tail}
}

// tail is a fixed-size ring of the most recent lines.
type tail struct {
	lines []string
	next  int
	full  bool
}

func newTail(size int) *tail {
	if size <= 0 {
		size = DefaultTailSize
	}
	return &tail{lines: make([]string, size)}
}

func (t *tail) add(line string) {
	t.lines[t.next] = line
	t.next = (t.next + 1) % len(t.lines)
	if t.next == 0 {
		t.full = true
	}
}

func (t *tail) snapshot() []string {
	out := make([]string, 0, len(t.lines))
	if t.full {
		out = append(out, t.lines[t.next:]...)
	}
	return append(out, t.lines[:t.next]...)
}
