// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"ttr/internal/discovery"
	"ttr/internal/task"
)

// loadTree discovers and merges every task file visible from the current
// directory.
func loadTree() (task.Group, []discovery.Source, error) {
	env, err := discovery.CurrentEnv()
	if err != nil {
		return task.Group{}, nil, err
	}
	return discovery.LoadTree(env)
}

// findTaskByKeys resolves a key path such as "fb" to a task.
func findTaskByKeys(tree *task.Group, keys string) (*task.Task, error) {
	t, _, err := tree.Find(keys)
	if err != nil {
		return nil, err
	}
	return t, nil
}
