// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"os"

	"ttr/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	warnColor       = color.New(color.FgYellow)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	groupColor      = color.New(color.FgMagenta, color.Bold)
	dimColor        = color.New(color.Faint)
)

// launchOptions holds the global policy flags.
type launchOptions struct {
	confirm  bool
	clear    bool
	loop     bool
	logLevel string
}

var opts launchOptions

var rootCmd = &cobra.Command{
	Use:   "ttr",
	Short: "Terminal task runner",
	Long: `Pick and run shell commands from a keyboard-driven menu.

Tasks are read from .ttr.yaml in the current directory and each parent up to
your home directory, then ~/.ttr.yaml, then the per-user config directory.
Closer files take priority over farther ones.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnv(newEnvConfig(), cmd.Flags()); err != nil {
			return err
		}
		return logger.InitLogger(logger.Options{Level: opts.logLevel, ToFile: true})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, _, err := loadTree()
		if err != nil {
			return err
		}
		_, err = launch(cmd.Context(), &tree, nil)
		return err
	},
}

// RunCLI executes the root command and exits with the appropriate status.
func RunCLI() {
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			errorColor.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitErr.Code)
	}
	errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.confirm, "confirm", "c", false, "always ask before leaving a finished task")
	flags.BoolVar(&opts.clear, "clear", false, "clear the screen before running a task")
	flags.BoolVar(&opts.loop, "loop", false, "return to the menu after a task instead of exiting")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
}
