// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"ttr/internal/runner"
	"ttr/internal/task"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"
)

// cell is one entry of the menu grid.
type cell struct {
	key   task.Key
	name  string
	group bool
}

// gridCells lists a group's children: groups first, then tasks.
func gridCells(g *task.Group) []cell {
	cells := make([]cell, 0, len(g.Groups)+len(g.Tasks))
	for _, child := range g.Groups {
		cells = append(cells, cell{key: child.Key, name: child.Name, group: true})
	}
	for _, t := range g.Tasks {
		cells = append(cells, cell{key: t.Key, name: t.Name})
	}
	return cells
}

// gridColumns is how many cells fit across a terminal of the given width.
func gridColumns(width int) int {
	columns := (width - gridMargin) / cellWidth
	if columns < 1 {
		return 1
	}
	return columns
}

// layoutGrid arranges cells column-major: the first column is filled top to
// bottom before the second begins.
func layoutGrid(cells []cell, columns int) [][]cell {
	if len(cells) == 0 {
		return nil
	}
	if columns < 1 {
		columns = 1
	}
	rows := (len(cells) + columns - 1) / columns

	grid := make([][]cell, rows)
	for i, c := range cells {
		row := i % rows
		grid[row] = append(grid[row], c)
	}
	return grid
}

// fitName truncates long names to an ellipsis and pads short ones so the
// columns line up.
func fitName(name string) string {
	return runewidth.FillRight(runewidth.Truncate(name, nameWidth, "…"), nameWidth)
}

func renderCell(c cell) string {
	keyStyle := taskKeyStyle
	if c.group {
		keyStyle = groupKeyStyle
	}
	return " " + keyStyle.Render(c.key.String()) + " " + arrowStyle.Render(arrow) + " " + fitName(c.name) + "  "
}

func renderGrid(g *task.Group, width int) string {
	var b strings.Builder
	for _, row := range layoutGrid(gridCells(g), gridColumns(width)) {
		b.WriteString(rowIndent)
		for _, c := range row {
			b.WriteString(renderCell(c))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (n *Navigator) renderHeader() string {
	header := titleStyle.Render(menuTitle)
	if crumb := n.Breadcrumb(); crumb != "" {
		header += " " + arrow + " " + breadcrumbStyle.Render(crumb)
	}
	return rowIndent + header
}

func renderHelp(b key.Binding) string {
	return footerKeyStyle.Render(b.Help().Key) + " " + arrow + " " + footerDescStyle.Render(b.Help().Desc)
}

func (n *Navigator) renderFooter() string {
	help := rowIndent + renderHelp(n.keymap.Quit)
	if len(n.stack) > 1 {
		help += "   " + renderHelp(n.keymap.Back)
	}
	return help
}

// renderReport colours a run summary by outcome.
func renderReport(r runner.Report) string {
	if r.Success() {
		return rowIndent + successStyle.Render(r.String())
	}
	return rowIndent + errorStyle.Render(r.String())
}
