// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents where the menu is in its lifecycle.
type state int

const (
	stateBrowsing state = iota
	stateSelected
	stateQuit
)

const (
	defaultWidth = 80 // Used until the terminal reports its size.
	gridMargin   = 4  // Columns reserved around the grid.
	cellWidth    = 20 // Width budgeted per grid cell.
	nameWidth    = 12 // Visible width of a name inside a cell.
	rowIndent    = "  "
	arrow        = "→"
)
