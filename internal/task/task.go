// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package task defines the launcher's tree of named actions: tasks grouped into
// nested menus, each bound to a single-character key.
package task

import (
	"fmt"
	"strings"
)

// Key is the single character a task or group is selected with.
type Key rune

func (k Key) String() string {
	return string(k)
}

// Identity of the synthetic group that wraps the top level of one config file.
const (
	RootName     = "ROOT"
	RootKey  Key = '_'
)

// Task is a leaf action: an external command bound to a key.
type Task struct {
	Name string
	Key  Key

	// Cmd is run as `sh -c "exec <Cmd>"` so the shell is replaced by the command.
	Cmd string

	// Confirm forces the confirmation prompt even when the command succeeds.
	Confirm bool

	// Clear clears the screen before the command runs.
	Clear bool

	// WorkingDir is absolute once the task has been loaded. Empty means the
	// launcher's current directory at run time.
	WorkingDir string

	// Env holds extra variables applied on top of the inherited (or cleared) environment.
	Env map[string]string

	// ClearEnv starts the child from an empty environment.
	ClearEnv bool
}

// Group is a menu level holding child groups and tasks.
type Group struct {
	Name   string
	Key    Key
	Groups []Group
	Tasks  []Task
}

// NewRoot wraps the top-level groups and tasks of one config source.
func NewRoot(groups []Group, tasks []Task) Group {
	return Group{
		Name:   RootName,
		Key:    RootKey,
		Groups: groups,
		Tasks:  tasks,
	}
}

// IsEmpty reports whether the group has neither child groups nor tasks.
func (g *Group) IsEmpty() bool {
	return len(g.Groups) == 0 && len(g.Tasks) == 0
}

// TaskByKey returns the direct child task bound to k, or nil.
func (g *Group) TaskByKey(k Key) *Task {
	for i := range g.Tasks {
		if g.Tasks[i].Key == k {
			return &g.Tasks[i]
		}
	}
	return nil
}

// GroupByKey returns the direct child group bound to k, or nil.
func (g *Group) GroupByKey(k Key) *Group {
	for i := range g.Groups {
		if g.Groups[i].Key == k {
			return &g.Groups[i]
		}
	}
	return nil
}

// WalkTasks calls fn for every task in the tree, depth first. The pointer
// refers to the task stored in the tree, so fn may modify it.
func (g *Group) WalkTasks(fn func(t *Task)) {
	for i := range g.Tasks {
		fn(&g.Tasks[i])
	}
	for i := range g.Groups {
		g.Groups[i].WalkTasks(fn)
	}
}

// Find follows a key path (e.g. "fb": group f, then task b) the same way the
// interactive menu does: at each level a task wins over a group with the same key.
// It returns the task and the groups entered on the way.
func (g *Group) Find(path string) (*Task, []*Group, error) {
	keys := []rune(path)
	if len(keys) == 0 {
		return nil, nil, fmt.Errorf("empty key path")
	}

	current := g
	var trail []*Group
	for i, r := range keys {
		k := Key(r)
		if t := current.TaskByKey(k); t != nil {
			if i != len(keys)-1 {
				return nil, trail, fmt.Errorf("key %q selects task %q, remaining keys %q are unused", k, t.Name, string(keys[i+1:]))
			}
			return t, trail, nil
		}
		next := current.GroupByKey(k)
		if next == nil {
			return nil, trail, fmt.Errorf("no task for key: %s (at %s)", k, breadcrumb(trail))
		}
		trail = append(trail, next)
		current = next
	}
	return nil, trail, fmt.Errorf("key path %q ends at group %q, not a task", path, current.Name)
}

func breadcrumb(trail []*Group) string {
	if len(trail) == 0 {
		return "root"
	}
	names := make([]string, len(trail))
	for i, g := range trail {
		names[i] = g.Name
	}
	return strings.Join(names, " → ")
}
