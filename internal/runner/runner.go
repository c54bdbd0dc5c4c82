// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package runner executes task commands as child processes attached to the
// launcher's terminal and reports how they ended.
package runner

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"syscall"

	"ttr/internal/task"
	"ttr/internal/util"

	"golang.org/x/sys/unix"
)

// ExitStatus is how a child process ended.
type ExitStatus struct {
	Code     int
	Signal   syscall.Signal
	Signaled bool
}

// Success reports a normal exit with status zero.
func (s ExitStatus) Success() bool {
	return !s.Signaled && s.Code == 0
}

func (s ExitStatus) String() string {
	if s.Signaled {
		if name := unix.SignalName(s.Signal); name != "" {
			return fmt.Sprintf("signal: %d (%s)", int(s.Signal), name)
		}
		return fmt.Sprintf("signal: %d", int(s.Signal))
	}
	return fmt.Sprintf("exit status: %d", s.Code)
}

// ExitCode maps the status to a process exit code the way shells do.
func (s ExitStatus) ExitCode() int {
	if s.Signaled {
		return 128 + int(s.Signal)
	}
	return s.Code
}

// Report is the outcome of the most recent run, carried into the next menu
// as its status line.
type Report struct {
	TaskName string
	Status   ExitStatus
}

// Success reports whether the task completed.
func (r Report) Success() bool {
	return r.Status.Success()
}

func (r Report) String() string {
	if r.Success() {
		return fmt.Sprintf("Task %s completed", r.TaskName)
	}
	return fmt.Sprintf("Task %s failed (%s)", r.TaskName, r.Status)
}

// PidCell holds the pid of the running child, or 0 when none runs. It is
// shared between the runner and the interrupt forwarder.
type PidCell struct {
	pid atomic.Int32
}

func (c *PidCell) Store(pid int) {
	c.pid.Store(int32(pid))
}

func (c *PidCell) Load() int {
	return int(c.pid.Load())
}

func (c *PidCell) Clear() {
	c.pid.Store(0)
}

// ShellCommand is the argument handed to "sh -c". The exec makes the task's
// program replace the shell so signals reach it directly.
func ShellCommand(t *task.Task) string {
	return "exec " + t.Cmd
}

// BuildEnv returns the child environment: base (or nothing when the task
// clears its environment) overlaid with the task's variables. Overrides are
// appended in key order so the result is stable.
func BuildEnv(base []string, t *task.Task) []string {
	keys := make([]string, 0, len(t.Env))
	for k := range t.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(keys))
	if !t.ClearEnv {
		for _, kv := range base {
			name, _, _ := strings.Cut(kv, "=")
			if _, overridden := t.Env[name]; overridden {
				continue
			}
			env = append(env, kv)
		}
	}
	for _, k := range keys {
		env = append(env, k+"="+t.Env[k])
	}
	return env
}

// ShellLine renders the task as a single POSIX shell line equivalent to what
// Run executes.
func ShellLine(t *task.Task) string {
	var b strings.Builder
	if t.WorkingDir != "" {
		b.WriteString("cd ")
		b.WriteString(util.QuoteArgForShell(t.WorkingDir))
		b.WriteString(" && ")
	}

	keys := make([]string, 0, len(t.Env))
	for k := range t.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if t.ClearEnv {
		b.WriteString("env -i ")
	} else if len(keys) > 0 {
		b.WriteString("env ")
	}
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(util.QuoteArgForShell(t.Env[k]))
		b.WriteString(" ")
	}

	b.WriteString("sh -c ")
	b.WriteString(util.QuoteArgForShell(ShellCommand(t)))
	return b.String()
}
