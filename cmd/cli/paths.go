// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"ttr/internal/discovery"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show where task files are looked for, highest priority first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := discovery.CurrentEnv()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if env.HomeDir == "" {
			warnColor.Fprintln(out, "Warning: home directory unknown, searching up to the filesystem root.")
		}
		for _, s := range discovery.Candidates(env) {
			marker := dimColor.Sprint("missing")
			if s.Exists() {
				marker = successColor.Sprint("found  ")
			}
			fmt.Fprintf(out, "%s  %-11s  %s\n", marker, s.Tier, s.Path)
		}
		return nil
	},
}
