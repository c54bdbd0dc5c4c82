// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ttr/internal/logger"
	"ttr/internal/runner"
	"ttr/internal/task"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Terminal runs the menu and the prompt on a real terminal and clears it
// between runs.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	output *termenv.Output
}

// NewTerminal returns a Terminal bound to the process's stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		in:     os.Stdin,
		out:    os.Stdout,
		output: termenv.NewOutput(os.Stdout),
	}
}

// Select shows the menu on the alternate screen until a task is picked or the
// user quits; a nil task means quit. The terminal is restored on every path
// out, panics included.
func (t *Terminal) Select(root *task.Group, last *runner.Report) (*task.Task, error) {
	nav := NewNavigator(root, last)
	p := tea.NewProgram(nav,
		tea.WithAltScreen(),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if errors.Is(err, tea.ErrInterrupted) {
		logger.Info("Menu interrupted, quitting")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("menu failed: %w", err)
	}

	if m, ok := final.(*Navigator); ok {
		return m.Selected(), nil
	}
	return nil, nil
}

// Confirm prints the outcome below the task's output and waits for a prompt
// key. An interrupt counts as q.
func (t *Terminal) Confirm(report runner.Report) (Action, error) {
	m := newConfirmModel(report)
	p := tea.NewProgram(m,
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if errors.Is(err, tea.ErrInterrupted) {
		return ActionQuit, nil
	}
	if err != nil {
		return ActionNone, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	if cm, ok := final.(*confirmModel); ok && cm.action != ActionNone {
		return cm.action, nil
	}
	return ActionQuit, nil
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() error {
	t.output.ClearScreen()
	return nil
}
