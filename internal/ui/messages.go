// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "fmt"

// Text shown by the menu and the confirmation prompt.
const (
	menuTitle          = "SELECT A TASK"
	noTasksText        = "No tasks configured"
	noTasksHint        = "Create file .ttr.yaml in the current directory"
	errWhitespace      = "Whitespace is not allowed"
	errAtRoot          = "This is the root"
	errNotCharacterKey = "Please enter a character key"
	confirmHelpText    = "Press Enter to continue, q to quit. r to repeat or s to select another task..."
)

func errNoTaskForKey(r rune) string {
	return fmt.Sprintf("No task for key: %c", r)
}
