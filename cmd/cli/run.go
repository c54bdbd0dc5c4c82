// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"

	"ttr/internal/runner"

	"github.com/spf13/cobra"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run <keys>",
	Short: "Run a task by its key path, skipping the menu",
	Long: `Runs the task reached by typing <keys> in the menu, e.g. "fb" for task b
inside group f. Confirmation, clearing and loop mode behave as in the menu.
When the session ends with a failed task, ttr exits with the task's status.`,
	Example:           "  ttr run fb\n  ttr run --dry-run fb",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: keyPathCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, _, err := loadTree()
		if err != nil {
			return err
		}
		t, err := findTaskByKeys(&tree, args[0])
		if err != nil {
			return err
		}

		if dryRun {
			fmt.Fprintln(cmd.OutOrStdout(), runner.ShellLine(t))
			return nil
		}

		last, err := launch(cmd.Context(), &tree, t)
		if err != nil {
			return err
		}
		if last != nil && !last.Success() {
			return &ExitCodeError{Code: last.Status.ExitCode(), Err: errors.New(last.String())}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the equivalent shell command instead of running it")
}
