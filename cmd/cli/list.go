// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"strings"

	"ttr/internal/task"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the merged task tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, sources, err := loadTree()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if tree.IsEmpty() {
			fmt.Fprintln(out, "No tasks configured.")
			return nil
		}
		statusColor.Fprintf(out, "Tasks from %d file(s):\n", len(sources))
		printGroup(out, &tree, 1)
		return nil
	},
}

// printGroup writes a group's children in menu order, one per line, indented
// by depth.
func printGroup(w io.Writer, g *task.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := range g.Groups {
		child := &g.Groups[i]
		fmt.Fprintf(w, "%s%s %s/\n", indent, groupColor.Sprint(child.Key.String()), child.Name)
		printGroup(w, child, depth+1)
	}
	for _, t := range g.Tasks {
		fmt.Fprintf(w, "%s%s %s  %s\n", indent, identifierColor.Sprint(t.Key.String()), t.Name, dimColor.Sprint(t.Cmd))
	}
}
