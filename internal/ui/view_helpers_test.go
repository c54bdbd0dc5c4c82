// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"
	"testing"

	"ttr/internal/task"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func names(rows [][]cell) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		for _, c := range row {
			out[i] = append(out[i], c.name)
		}
	}
	return out
}

func TestGridColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, gridColumns(80))
	assert.Equal(t, 1, gridColumns(24))
	assert.Equal(t, 1, gridColumns(10))
	assert.Equal(t, 1, gridColumns(0))
	assert.Equal(t, 6, gridColumns(124))
}

func TestLayoutGridColumnMajor(t *testing.T) {
	t.Parallel()

	var cells []cell
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		cells = append(cells, cell{name: n})
	}

	assert.Equal(t, [][]string{{"a", "c", "e"}, {"b", "d"}}, names(layoutGrid(cells, 3)))
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}, names(layoutGrid(cells, 1)))
	assert.Equal(t, [][]string{{"a", "b", "c", "d", "e"}}, names(layoutGrid(cells, 10)))
	assert.Nil(t, layoutGrid(nil, 3))
}

func TestGridCellsGroupsFirst(t *testing.T) {
	t.Parallel()

	g := task.Group{
		Tasks:  []task.Task{{Name: "t1", Key: '1'}, {Name: "t2", Key: '2'}},
		Groups: []task.Group{{Name: "g", Key: 'g'}},
	}
	cells := gridCells(&g)
	assert.Equal(t, []cell{
		{key: 'g', name: "g", group: true},
		{key: '1', name: "t1"},
		{key: '2', name: "t2"},
	}, cells)
}

func TestFitName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short       ", fitName("short"))
	assert.Equal(t, "exactly12chr", fitName("exactly12chr"))
	assert.Equal(t, "a long task…", fitName("a long task name"))
}

func TestRenderGridRows(t *testing.T) {
	t.Parallel()

	g := task.Group{Tasks: []task.Task{
		{Name: "one", Key: '1'},
		{Name: "two", Key: '2'},
		{Name: "three", Key: '3'},
		{Name: "four", Key: '4'},
	}}

	lines := strings.Split(strings.TrimSuffix(renderGrid(&g, 44), "\n"), "\n")
	assert.Equal(t, []string{
		"   1 → one            3 → three         ",
		"   2 → two            4 → four          ",
	}, lines)
}

func TestKeyColours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("10"), taskKeyStyle.GetForeground())
	assert.Equal(t, lipgloss.Color("12"), groupKeyStyle.GetForeground())
}
