// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"ttr/internal/logger"
	"ttr/internal/task"
)

// Runner spawns tasks locally through sh. Nil stdio fields connect the child
// to the null device.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Pids receives the child pid for the duration of each run.
	Pids *PidCell

	// Environ supplies the inherited environment. Defaults to os.Environ.
	Environ func() []string
}

// NewRunner returns a Runner wired to the process's own terminal.
func NewRunner(pids *PidCell) *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Pids:   pids,
	}
}

func (r *Runner) environ() []string {
	if r.Environ != nil {
		return r.Environ()
	}
	return os.Environ()
}

// Run executes t and waits for it. A non-zero or signaled exit is reported
// through the returned status; the error is reserved for failures to spawn
// or wait on the child.
func (r *Runner) Run(ctx context.Context, t *task.Task) (ExitStatus, error) {
	if err := ctx.Err(); err != nil {
		return ExitStatus{}, err
	}

	cmd := exec.Command("sh", "-c", ShellCommand(t))
	cmd.Dir = t.WorkingDir
	cmd.Env = BuildEnv(r.environ(), t)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		logger.Error("Failed to start task", "task", t.Name, "dir", t.WorkingDir, "error", err)
		return ExitStatus{}, fmt.Errorf("failed to start task '%s': %w", t.Name, err)
	}

	pid := cmd.Process.Pid
	if r.Pids != nil {
		r.Pids.Store(pid)
	}
	logger.Info("Task started", "task", t.Name, "pid", pid, "dir", t.WorkingDir, "clear_env", t.ClearEnv)

	waitErr := cmd.Wait()
	if r.Pids != nil {
		r.Pids.Clear()
	}

	status, err := statusFromWait(waitErr)
	if err != nil {
		logger.Error("Failed waiting for task", "task", t.Name, "pid", pid, "error", err)
		return ExitStatus{}, fmt.Errorf("failed to wait for task '%s': %w", t.Name, err)
	}
	logger.Info("Task exited", "task", t.Name, "pid", pid, "status", status.String())
	return status, nil
}

func statusFromWait(err error) (ExitStatus, error) {
	if err == nil {
		return ExitStatus{}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return ExitStatus{}, err
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
		if ws.Signaled() {
			return ExitStatus{Signal: ws.Signal(), Signaled: true}, nil
		}
		return ExitStatus{Code: ws.ExitStatus()}, nil
	}
	return ExitStatus{Code: exitErr.ExitCode()}, nil
}
