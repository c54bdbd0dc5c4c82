// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"testing"

	"ttr/internal/runner"
	"ttr/internal/task"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleTree() *task.Group {
	root := task.NewRoot(
		[]task.Group{{
			Name: "foo",
			Key:  'f',
			Groups: []task.Group{{
				Name:  "deep",
				Key:   'd',
				Tasks: []task.Task{{Name: "inner", Key: 'i', Cmd: "true"}},
			}},
			Tasks: []task.Task{
				{Name: "bar", Key: 'b', Cmd: "true"},
				{Name: "boo", Key: 'o', Cmd: "false"},
			},
		}},
		[]task.Task{{Name: "top", Key: 't', Cmd: "true"}},
	)
	return &root
}

func TestNavigatorTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		keys      []tea.KeyMsg
		wantState state
		wantDepth int
		wantErr   string
		wantTask  string
	}{
		{name: "quit", keys: []tea.KeyMsg{runes("q")}, wantState: stateQuit, wantDepth: 1},
		{name: "quit inside group", keys: []tea.KeyMsg{runes("f"), runes("q")}, wantState: stateQuit, wantDepth: 2},
		{name: "space", keys: []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}}, wantDepth: 1, wantErr: errWhitespace},
		{name: "backspace at root", keys: []tea.KeyMsg{{Type: tea.KeyBackspace}}, wantDepth: 1, wantErr: errAtRoot},
		{name: "escape at root", keys: []tea.KeyMsg{{Type: tea.KeyEsc}}, wantDepth: 1, wantErr: errAtRoot},
		{name: "push group", keys: []tea.KeyMsg{runes("f")}, wantDepth: 2},
		{name: "push twice", keys: []tea.KeyMsg{runes("f"), runes("d")}, wantDepth: 3},
		{name: "pop", keys: []tea.KeyMsg{runes("f"), {Type: tea.KeyBackspace}}, wantDepth: 1},
		{name: "select top task", keys: []tea.KeyMsg{runes("t")}, wantState: stateSelected, wantDepth: 1, wantTask: "top"},
		{name: "select nested task", keys: []tea.KeyMsg{runes("f"), runes("b")}, wantState: stateSelected, wantDepth: 2, wantTask: "bar"},
		{name: "unknown key", keys: []tea.KeyMsg{runes("x")}, wantDepth: 1, wantErr: "No task for key: x"},
		{name: "task key of other level", keys: []tea.KeyMsg{runes("b")}, wantDepth: 1, wantErr: "No task for key: b"},
		{name: "control key", keys: []tea.KeyMsg{{Type: tea.KeyCtrlC}}, wantDepth: 1, wantErr: errNotCharacterKey},
		{name: "function key", keys: []tea.KeyMsg{{Type: tea.KeyF1}}, wantDepth: 1, wantErr: errNotCharacterKey},
		{name: "alt modified", keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("t"), Alt: true}}, wantState: stateSelected, wantDepth: 1, wantTask: "top"},
		{name: "enter", keys: []tea.KeyMsg{{Type: tea.KeyEnter}}, wantDepth: 1, wantErr: errNotCharacterKey},
		{name: "error cleared by next key", keys: []tea.KeyMsg{runes("x"), runes("f")}, wantDepth: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := NewNavigator(sampleTree(), nil)
			for _, k := range tt.keys {
				n.handleKey(k)
			}

			assert.Equal(t, tt.wantState, n.state)
			assert.Equal(t, tt.wantDepth, n.Depth())
			assert.Equal(t, tt.wantErr, n.errMsg)
			if tt.wantTask == "" {
				assert.Nil(t, n.Selected())
			} else {
				require.NotNil(t, n.Selected())
				assert.Equal(t, tt.wantTask, n.Selected().Name)
			}
		})
	}
}

func TestNavigatorBreadcrumb(t *testing.T) {
	t.Parallel()

	n := NewNavigator(sampleTree(), nil)
	assert.Equal(t, "", n.Breadcrumb())

	n.handleKey(runes("f"))
	assert.Equal(t, "foo", n.Breadcrumb())

	n.handleKey(runes("d"))
	assert.Equal(t, "foo → deep", n.Breadcrumb())

	n.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "foo", n.Breadcrumb())

	n.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	n.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 1, n.Depth())
	assert.Equal(t, errAtRoot, n.errMsg)
}

func TestNavigatorUpdateQuitsOnSelection(t *testing.T) {
	t.Parallel()

	n := NewNavigator(sampleTree(), nil)

	_, cmd := n.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, n.width)

	_, cmd = n.Update(runes("x"))
	assert.Nil(t, cmd)
	assert.False(t, n.Done())

	_, cmd = n.Update(runes("t"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, n.Done())
}

func TestNavigatorView(t *testing.T) {
	t.Parallel()

	last := &runner.Report{TaskName: "boo", Status: runner.ExitStatus{Code: 1}}
	n := NewNavigator(sampleTree(), last)

	view := n.View()
	assert.Contains(t, view, "Task boo failed (exit status: 1)")
	assert.Contains(t, view, menuTitle)
	assert.Contains(t, view, " f → foo")
	assert.Contains(t, view, " t → top")
	assert.Contains(t, view, "q → quit")
	assert.NotContains(t, view, "<BS> → up")

	n.handleKey(runes("f"))
	n.handleKey(runes("z"))
	view = n.View()
	assert.Contains(t, view, menuTitle+" → foo")
	assert.Contains(t, view, "<BS> → up")
	assert.Contains(t, view, "No task for key: z")
}

func TestNavigatorViewEmptyTree(t *testing.T) {
	t.Parallel()

	root := task.NewRoot(nil, nil)
	view := NewNavigator(&root, nil).View()
	assert.Contains(t, view, noTasksText)
	assert.Contains(t, view, noTasksHint)
}
