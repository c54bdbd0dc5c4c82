// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the menu and the confirmation
// prompt. Task and group keys come from the config and are matched directly.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the fixed keybindings.
type KeyMap struct {
	// Menu
	Quit key.Binding // Leave without selecting a task
	Back key.Binding // Return to the parent group

	// Confirmation prompt
	Continue key.Binding // Acknowledge the result
	Dismiss  key.Binding // Acknowledge the result, quitting outside loop mode
	Repeat   key.Binding // Run the same task again
	Reselect key.Binding // Go back to the menu
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace", "esc"),
		key.WithHelp("<BS>", "up"),
	),

	Continue: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "continue"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q", "quit"),
	),
	Repeat: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "repeat"),
	),
	Reselect: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "select another task"),
	),
}
