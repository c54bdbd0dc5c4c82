// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// QuoteArgForShell quotes an argument for safe use in a POSIX shell command.
// It uses single quotes and escapes any internal single quotes.
// A "~/" prefix is left outside the quotes so the shell still expands it.
func QuoteArgForShell(arg string) string {
	if strings.HasPrefix(arg, "~/") {
		quotedPart := strings.ReplaceAll(arg[2:], "'", `'\''`)
		return `~/'` + quotedPart + `'`
	}

	quotedArg := strings.ReplaceAll(arg, "'", `'\''`)
	return `'` + quotedArg + `'`
}

// LintCommand checks that a command line splits into shell words. It catches
// unterminated quotes and dangling escapes before the shell sees them.
// Variables and command substitutions are left untouched.
func LintCommand(cmd string) ([]string, error) {
	if strings.TrimSpace(cmd) == "" {
		return nil, fmt.Errorf("command is empty")
	}

	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false
	words, err := parser.Parse(cmd)
	if err != nil {
		return nil, fmt.Errorf("command %q does not parse: %w", cmd, err)
	}
	return words, nil
}
