package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// maxLineSize bounds a single output line; package managers print long ones.
const maxLineSize = 1 << 20

// ExecRunner runs commands with os/exec. Stdout and stderr share one pipe so
// lines keep the order the process wrote them in.
type ExecRunner struct {
	// TailSize is the number of trailing lines kept; DefaultTailSize if zero.
	TailSize int
}

// NewExecRunner returns an ExecRunner keeping DefaultTailSize lines.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{TailSize: DefaultTailSize}
}

// Run starts the command and blocks until it exits, calling onLine for every
// line of combined output. No timeout is applied; ctx is only used to start
// the process.
func (r *ExecRunner) Run(ctx context.Context, c Command, onLine LineFunc) (*Result, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("%s is required on PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("attaching to %s output: %w", c, err)
	}
	// Same *os.File for both streams: the child gets one descriptor.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", c, err)
	}

	t := newTail(r.TailSize)
	res := &Result{}
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		t.add(line)
		res.Lines++
		if onLine != nil {
			onLine(line)
		}
	}
	scanErr := scanner.Err()
	if scanErr != nil {
		// Keep the pipe drained so the child cannot block on a full buffer.
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()
	res.Tail = t.snapshot()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("waiting for %s: %w", c, waitErr)
	}
	if scanErr != nil {
		return res, fmt.Errorf("reading %s output: %w", c, scanErr)
	}
	return res, nil
}
