// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"unicode"

	"ttr/internal/logger"
	"ttr/internal/task"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey applies one key press to the menu. Rules are checked in order and
// the first match wins.
func (n *Navigator) handleKey(msg tea.KeyMsg) state {
	n.errMsg = ""

	if key.Matches(msg, n.keymap.Quit) {
		n.state = stateQuit
		return n.state
	}

	if isWhitespace(msg) {
		n.errMsg = errWhitespace
		return n.state
	}

	if key.Matches(msg, n.keymap.Back) {
		if len(n.stack) <= 1 {
			n.errMsg = errAtRoot
			return n.state
		}
		n.stack = n.stack[:len(n.stack)-1]
		return n.state
	}

	r, ok := characterKey(msg)
	if !ok {
		n.errMsg = errNotCharacterKey
		return n.state
	}

	current := n.current()
	if t := current.TaskByKey(task.Key(r)); t != nil {
		logger.Debug("Task selected", "task", t.Name, "key", string(r))
		n.selected = t
		n.state = stateSelected
		return n.state
	}
	if g := current.GroupByKey(task.Key(r)); g != nil {
		n.stack = append(n.stack, g)
		return n.state
	}

	n.errMsg = errNoTaskForKey(r)
	return n.state
}

func isWhitespace(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeySpace {
		return true
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return false
	}
	for _, r := range msg.Runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(msg.Runes) > 0
}

// characterKey extracts a single printable character. Alt is ignored; control
// combinations never arrive as runes.
func characterKey(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}
