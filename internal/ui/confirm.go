// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"

	"ttr/internal/runner"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is the user's answer to the confirmation prompt.
type Action int

const (
	ActionNone     Action = iota
	ActionContinue        // Enter
	ActionQuit            // q or Esc
	ActionRepeat          // r
	ActionReselect        // s
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionQuit:
		return "quit"
	case ActionRepeat:
		return "repeat"
	case ActionReselect:
		return "reselect"
	default:
		return "none"
	}
}

// confirmModel shows a run's outcome and waits for one of the prompt keys.
// Every other key is ignored.
type confirmModel struct {
	report runner.Report
	keymap KeyMap
	action Action
}

func newConfirmModel(report runner.Report) *confirmModel {
	return &confirmModel{report: report, keymap: DefaultKeyMap}
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if a := m.actionFor(msg); a != ActionNone {
			m.action = a
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *confirmModel) actionFor(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, m.keymap.Continue):
		return ActionContinue
	case key.Matches(msg, m.keymap.Dismiss):
		return ActionQuit
	case key.Matches(msg, m.keymap.Repeat):
		return ActionRepeat
	case key.Matches(msg, m.keymap.Reselect):
		return ActionReselect
	default:
		return ActionNone
	}
}

func (m *confirmModel) View() string {
	return "\n" + confirmStatus(m.report) + "\n" + hintStyle.Render(confirmHelpText) + "\n"
}

func confirmStatus(r runner.Report) string {
	if r.Success() {
		return successStyle.Render("Task completed")
	}
	return errorStyle.Render(fmt.Sprintf("Task failed (%s)", r.Status))
}
