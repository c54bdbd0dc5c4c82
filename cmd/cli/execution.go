// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"os"

	"ttr/internal/controller"
	"ttr/internal/logger"
	"ttr/internal/runner"
	"ttr/internal/task"
	"ttr/internal/ui"

	"golang.org/x/term"
)

var errNoTerminal = errors.New("ttr needs an interactive terminal on stdin and stdout")

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	return nil
}

// launch runs the interactive session. When first is set it runs before the
// menu appears. The returned report is the run that ended the session, or
// nil if the user quit from the menu.
func launch(ctx context.Context, tree *task.Group, first *task.Task) (*runner.Report, error) {
	if err := requireTerminal(); err != nil {
		return nil, err
	}

	pids := &runner.PidCell{}
	forwarder := runner.NewForwarder(pids)
	forwarder.Start()
	defer forwarder.Stop()

	terminal := ui.NewTerminal()
	c := controller.New(terminal, terminal, runner.NewRunner(pids), terminal, controller.Options{
		Confirm: opts.confirm,
		Clear:   opts.clear,
		Loop:    opts.loop,
	})

	logger.Info("Session started", "confirm", opts.confirm, "clear", opts.clear, "loop", opts.loop)
	last, err := c.Run(ctx, tree, first)
	if err != nil {
		logger.Error("Session failed", "error", err)
		return last, err
	}
	return last, nil
}
