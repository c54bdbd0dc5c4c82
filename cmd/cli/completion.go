// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"ttr/internal/task"

	"github.com/spf13/cobra"
)

// keyPathCandidates lists the key paths one key longer than prefix, each with
// the entry's name as description. A prefix that already selects a task
// yields just that task.
func keyPathCandidates(tree *task.Group, prefix string) []string {
	g := tree
	runes := []rune(prefix)
	for i, r := range runes {
		if t := g.TaskByKey(task.Key(r)); t != nil {
			if i == len(runes)-1 {
				return []string{prefix + "\t" + t.Name}
			}
			return nil
		}
		child := g.GroupByKey(task.Key(r))
		if child == nil {
			return nil
		}
		g = child
	}

	suggestions := make([]string, 0, len(g.Groups)+len(g.Tasks))
	for _, child := range g.Groups {
		suggestions = append(suggestions, prefix+child.Key.String()+"\t"+child.Name+"/")
	}
	for _, t := range g.Tasks {
		suggestions = append(suggestions, prefix+t.Key.String()+"\t"+t.Name)
	}
	return suggestions
}

// keyPathCompletionFunc provides dynamic completion for task key paths.
func keyPathCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Ignore load errors during completion
	tree, _, err := loadTree()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return keyPathCandidates(&tree, toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
