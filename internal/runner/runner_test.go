package runner

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on Windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "make reactjs", Command{Name: "make", Args: []string{"reactjs"}}.String())
	assert.Equal(t, "make", Command{Name: "make"}.String())
}

func TestTail(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		lines []string
		want  []string
	}{
		{"empty", 3, nil, []string{}},
		{"partial", 3, []string{"a", "b"}, []string{"a", "b"}},
		{"exact", 3, []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"wrapped", 3, []string{"a", "b", "c", "d", "e"}, []string{"c", "d", "e"}},
		{"default size", 0, []string{"1", "2", "3", "4"}, []string{"2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newTail(tt.size)
			for _, l := range tt.lines {
				tl.add(l)
			}
			assert.Equal(t, tt.want, tl.snapshot())
		})
	}
}

func TestCheck(t *testing.T) {
	cmd := Command{Name: "make", Args: []string{"vue"}}

	assert.NoError(t, Check(cmd, &Result{ExitCode: 0}))
	assert.NoError(t, Check(cmd, nil))

	err := Check(cmd, &Result{ExitCode: 2, Tail: []string{"x"}})
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Equal(t, "make vue", exitErr.Command)
	assert.Equal(t, []string{"x"}, exitErr.Tail)
	assert.Equal(t, "make vue exited with code 2", err.Error())
}

func TestExecRunner_StreamsLinesInOrder(t *testing.T) {
	requireShell(t)

	var got []string
	r := NewExecRunner()
	res, err := r.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo one; echo two 1>&2; echo '  three  '"},
	}, func(line string) { got = append(got, line) })

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, []string{"one", "two", "three"}, got)
	assert.Equal(t, 3, res.Lines)
}

func TestExecRunner_NonZeroExitKeepsTail(t *testing.T) {
	requireShell(t)

	r := &ExecRunner{TailSize: 2}
	res, err := r.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo a; echo b; echo c; exit 42"},
	}, nil)

	require.NoError(t, err, "non-zero exit should not be an error")
	assert.Equal(t, 42, res.ExitCode)
	assert.Equal(t, []string{"b", "c"}, res.Tail)
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	requireShell(t)

	dir := filepath.Join(t.TempDir(), "workdir-marker")
	require.NoError(t, os.Mkdir(dir, 0755))
	var got []string
	_, err := NewExecRunner().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "pwd"},
		Dir:  dir,
	}, func(line string) { got = append(got, line) })

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0], "/workdir-marker"), got[0])
}

func TestExecRunner_Env(t *testing.T) {
	requireShell(t)

	var got []string
	_, err := NewExecRunner().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo $PROJTOOLS_TEST_VALUE"},
		Env:  []string{"PROJTOOLS_TEST_VALUE=hello"},
	}, func(line string) { got = append(got, line) })

	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, got)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), Command{
		Name: "projtools-definitely-not-a-binary",
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required on PATH")
}
