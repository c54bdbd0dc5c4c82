// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package controller drives the launcher: pick a task, run it, report the
// outcome, then repeat, reselect or exit according to the user's answer and
// the global policy flags.
package controller

import (
	"context"
	"fmt"

	"ttr/internal/logger"
	"ttr/internal/runner"
	"ttr/internal/task"
	"ttr/internal/ui"
)

// Selector picks a task from the tree. A nil task means the user quit.
type Selector interface {
	Select(root *task.Group, last *runner.Report) (*task.Task, error)
}

// Prompter asks what to do after a run.
type Prompter interface {
	Confirm(report runner.Report) (ui.Action, error)
}

// Executor runs one task to completion.
type Executor interface {
	Run(ctx context.Context, t *task.Task) (runner.ExitStatus, error)
}

// Screen clears the terminal before a run.
type Screen interface {
	Clear() error
}

// Options are the global policy flags.
type Options struct {
	Confirm bool // Always ask after a run
	Clear   bool // Always clear the screen before a run
	Loop    bool // Return to the menu instead of exiting
}

// Next says where control goes after a task run.
type Next int

const (
	NextExit Next = iota
	NextSelect
)

// Controller wires the menu, prompt and runner together.
type Controller struct {
	selector Selector
	prompter Prompter
	executor Executor
	screen   Screen
	opts     Options
}

func New(selector Selector, prompter Prompter, executor Executor, screen Screen, opts Options) *Controller {
	return &Controller{
		selector: selector,
		prompter: prompter,
		executor: executor,
		screen:   screen,
		opts:     opts,
	}
}

// Run is the outer loop. When first is non-nil it is run before the menu is
// shown. It returns the report of the run that ended the session, or nil when
// the session ended with a quit from the menu.
func (c *Controller) Run(ctx context.Context, root *task.Group, first *task.Task) (*runner.Report, error) {
	var last *runner.Report

	t := first
	for {
		if t == nil {
			selected, err := c.selector.Select(root, last)
			if err != nil {
				return nil, err
			}
			if selected == nil {
				logger.Info("Quit from menu")
				return nil, nil
			}
			t = selected
		}

		next, report, err := c.RunTask(ctx, t)
		if report != nil {
			last = report
		}
		if err != nil {
			return last, err
		}
		if next == NextExit {
			return last, nil
		}
		t = nil
	}
}

// RunTask is the inner loop: run t, repeating while the user asks for it.
func (c *Controller) RunTask(ctx context.Context, t *task.Task) (Next, *runner.Report, error) {
	var last *runner.Report

	for {
		if t.Clear || c.opts.Clear {
			if err := c.screen.Clear(); err != nil {
				logger.Warn("Failed to clear screen", "error", err)
			}
		}

		status, err := c.executor.Run(ctx, t)
		if err != nil {
			return NextExit, last, err
		}
		report := runner.Report{TaskName: t.Name, Status: status}
		last = &report

		if status.Success() && !t.Confirm && !c.opts.Confirm {
			return c.afterRun(), last, nil
		}

		action, err := c.prompter.Confirm(report)
		if err != nil {
			return NextExit, last, fmt.Errorf("failed to read confirmation: %w", err)
		}
		logger.Debug("Confirmation answered", "task", t.Name, "action", action.String())

		switch action {
		case ui.ActionRepeat:
			continue
		case ui.ActionReselect:
			return NextSelect, last, nil
		default:
			return c.afterRun(), last, nil
		}
	}
}

func (c *Controller) afterRun() Next {
	if c.opts.Loop {
		return NextSelect
	}
	return NextExit
}
