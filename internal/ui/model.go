// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the terminal menu used to pick a task and the prompt
// shown after a task finishes. Both are Bubble Tea models; Terminal runs them
// against the real terminal.
package ui

import (
	"strings"

	"ttr/internal/runner"
	"ttr/internal/task"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigator is the menu model. It keeps a stack of groups, starting at the
// root, and ends either with a selected task or with a quit.
type Navigator struct {
	stack    []*task.Group
	last     *runner.Report // Outcome of the previous run, shown above the menu
	errMsg   string         // Transient error for the next redraw
	width    int
	keymap   KeyMap
	state    state
	selected *task.Task
}

// NewNavigator returns a menu positioned at root. last may be nil.
func NewNavigator(root *task.Group, last *runner.Report) *Navigator {
	return &Navigator{
		stack:  []*task.Group{root},
		last:   last,
		width:  defaultWidth,
		keymap: DefaultKeyMap,
		state:  stateBrowsing,
	}
}

func (n *Navigator) Init() tea.Cmd {
	return nil
}

func (n *Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.width = msg.Width
	case tea.KeyMsg:
		if n.handleKey(msg) != stateBrowsing {
			return n, tea.Quit
		}
	}
	return n, nil
}

func (n *Navigator) View() string {
	var b strings.Builder

	if n.last != nil {
		b.WriteString(renderReport(*n.last))
		b.WriteString("\n\n")
	}

	b.WriteString(n.renderHeader())
	b.WriteString("\n\n")

	current := n.current()
	if current.IsEmpty() {
		b.WriteString(rowIndent + noTasksText + "\n")
		b.WriteString(rowIndent + hintStyle.Render(noTasksHint) + "\n")
	} else {
		b.WriteString(renderGrid(current, n.width))
	}

	b.WriteString("\n")
	b.WriteString(n.renderFooter())

	if n.errMsg != "" {
		b.WriteString("\n\n" + rowIndent + errorStyle.Render(n.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen task, or nil if the menu was quit.
func (n *Navigator) Selected() *task.Task {
	if n.state != stateSelected {
		return nil
	}
	return n.selected
}

// Done reports whether the menu reached a terminal state.
func (n *Navigator) Done() bool {
	return n.state != stateBrowsing
}

// Depth is the number of groups on the stack, root included.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Breadcrumb joins the names of the open groups below the root.
func (n *Navigator) Breadcrumb() string {
	names := make([]string, 0, len(n.stack)-1)
	for _, g := range n.stack[1:] {
		names = append(names, g.Name)
	}
	return strings.Join(names, " "+arrow+" ")
}

func (n *Navigator) current() *task.Group {
	return n.stack[len(n.stack)-1]
}
