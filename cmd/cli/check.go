// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"strings"

	"ttr/internal/discovery"
	"ttr/internal/task"
	"ttr/internal/util"

	"github.com/spf13/cobra"
)

// reservedKeys are consumed by the menu before task keys are looked up.
var reservedKeys = map[task.Key]string{
	'q': "quit",
	' ': "whitespace",
}

// problem is one finding from check.
type problem struct {
	source string
	where  string
	msg    string
}

func (p problem) String() string {
	if p.where == "" {
		return fmt.Sprintf("%s: %s", p.source, p.msg)
	}
	return fmt.Sprintf("%s: %s: %s", p.source, p.where, p.msg)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate task files and report suspicious entries",
	Long: `Loads every task file on the search path and reports:
  - sibling entries sharing a key
  - keys that the menu reserves (q and space)
  - commands with unbalanced quoting
  - working directories that do not exist`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := discovery.CurrentEnv()
		if err != nil {
			return err
		}
		sources := discovery.FindConfigFiles(env)
		roots, err := discovery.LoadRoots(sources)
		if err != nil {
			return err
		}

		problems := checkRoots(sources, roots)
		out := cmd.OutOrStdout()
		for _, p := range problems {
			warnColor.Fprint(out, "warning: ")
			fmt.Fprintln(out, p.String())
		}

		if len(problems) > 0 {
			return &ExitCodeError{Code: 1, Err: fmt.Errorf("%d problem(s) found in %d file(s)", len(problems), len(sources))}
		}
		successColor.Fprintf(out, "No problems found in %d file(s).\n", len(sources))
		return nil
	},
}

// checkRoots inspects each parsed file on its own, then the merged tree for
// collisions that only appear across files.
func checkRoots(sources []discovery.Source, roots []task.Group) []problem {
	var problems []problem

	for i := range roots {
		src := sources[i].Path
		root := &roots[i]

		for _, c := range root.Collisions() {
			problems = append(problems, problem{
				source: src,
				where:  strings.Join(c.Path, " → "),
				msg:    fmt.Sprintf("key %q is used by %s", c.Key.String(), strings.Join(c.Names, ", ")),
			})
		}

		walkGroups(root, nil, func(path []string, g *task.Group) {
			where := strings.Join(path, " → ")
			for _, child := range g.Groups {
				if why, ok := reservedKeys[child.Key]; ok {
					problems = append(problems, problem{src, where, fmt.Sprintf("group %q uses reserved key %q (%s)", child.Name, child.Key.String(), why)})
				}
			}
			for _, t := range g.Tasks {
				if why, ok := reservedKeys[t.Key]; ok {
					problems = append(problems, problem{src, where, fmt.Sprintf("task %q uses reserved key %q (%s)", t.Name, t.Key.String(), why)})
				}
				if _, err := util.LintCommand(t.Cmd); err != nil {
					problems = append(problems, problem{src, where, fmt.Sprintf("task %q: %v", t.Name, err)})
				}
				if t.WorkingDir == "" {
					continue
				}
				if info, err := os.Stat(t.WorkingDir); err != nil || !info.IsDir() {
					problems = append(problems, problem{src, where, fmt.Sprintf("task %q: working_dir %s does not exist", t.Name, t.WorkingDir)})
				}
			}
		})
	}

	if len(roots) > 1 {
		merged := task.Merge(roots)
		for _, c := range merged.Collisions() {
			problems = append(problems, problem{
				source: "merged tree",
				where:  strings.Join(c.Path, " → "),
				msg:    fmt.Sprintf("key %q is used by %s", c.Key.String(), strings.Join(c.Names, ", ")),
			})
		}
	}
	return problems
}

// walkGroups visits g and every nested group, passing the names leading to it.
func walkGroups(g *task.Group, path []string, fn func(path []string, g *task.Group)) {
	fn(path, g)
	for i := range g.Groups {
		child := &g.Groups[i]
		walkGroups(child, append(append([]string(nil), path...), child.Name), fn)
	}
}
