// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ttr/internal/config"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectTasks = `
groups:
  - name: foo
    key: f
    tasks:
      - name: build
        key: b
        cmd: make build
        working_dir: sub
        clear_env: true
        env:
          FOO: bar
tasks:
  - name: top
    key: t
    cmd: echo top
`

// workspace points HOME, the config and state directories and the working
// directory at a fresh temporary tree and returns the project directory.
func workspace(t *testing.T, tasks string) string {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	project := filepath.Join(home, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(project, "sub"), 0o755))
	if tasks != "" {
		require.NoError(t, os.WriteFile(filepath.Join(project, config.FileName), []byte(tasks), 0o644))
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "xdg"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	homedir.DisableCache = true
	homedir.Reset()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(project))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return project
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		dryRun = false
		opts = launchOptions{logLevel: "info"}
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunDryRunPrintsShellLine(t *testing.T) {
	project := workspace(t, projectTasks)

	out, err := execute(t, "run", "--dry-run", "fb")
	require.NoError(t, err)
	assert.Equal(t, "cd '"+filepath.Join(project, "sub")+"' && env -i FOO='bar' sh -c 'exec make build'\n", out)
}

func TestRunUnknownKeyPath(t *testing.T) {
	workspace(t, projectTasks)

	_, err := execute(t, "run", "--dry-run", "fx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no task for key: x")
}

func TestRunFailsOnMalformedFile(t *testing.T) {
	workspace(t, "tasks: [\n")

	_, err := execute(t, "run", "--dry-run", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.FileName)
}

func TestListPrintsTree(t *testing.T) {
	workspace(t, projectTasks)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Tasks from 1 file(s):")
	assert.Contains(t, out, "  f foo/\n")
	assert.Contains(t, out, "    b build  make build\n")
	assert.Contains(t, out, "  t top  echo top\n")
}

func TestListEmpty(t *testing.T) {
	workspace(t, "")

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks configured.\n", out)
}

func TestPathsMarksFoundFiles(t *testing.T) {
	project := workspace(t, projectTasks)

	out, err := execute(t, "paths")
	require.NoError(t, err)
	assert.Contains(t, out, "found    directory    "+filepath.Join(project, config.FileName))
	assert.Contains(t, out, "missing  home")
	assert.Contains(t, out, "missing  user config")
}

func TestCheckReportsProblems(t *testing.T) {
	workspace(t, `
tasks:
  - name: quitter
    key: q
    cmd: echo hi
  - name: broken
    key: b
    cmd: echo "unterminated
  - name: lost
    key: l
    cmd: ls
    working_dir: nowhere
  - name: twin
    key: l
    cmd: ls
`)

	out, err := execute(t, "check")
	require.Error(t, err)

	var exitErr *ExitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)

	assert.Contains(t, out, `task "quitter" uses reserved key "q" (quit)`)
	assert.Contains(t, out, `task "broken": command`)
	assert.Contains(t, out, `task "lost": working_dir`)
	assert.Contains(t, out, `key "l" is used by lost, twin`)
}

func TestCheckClean(t *testing.T) {
	workspace(t, projectTasks)

	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "No problems found in 1 file(s).")
}

func TestCheckTaskWithoutWorkingDir(t *testing.T) {
	workspace(t, "tasks:\n  - {name: top, key: t, cmd: echo top}\n")

	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.NotContains(t, out, "working_dir")
	assert.Contains(t, out, "No problems found in 1 file(s).")
}

func TestExitCodeError(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	err := &ExitCodeError{Code: 3, Err: inner}
	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, inner)

	var empty *ExitCodeError
	assert.Equal(t, "", empty.Error())
	assert.Nil(t, empty.Unwrap())
}
