// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config reads task files: it parses one .ttr.yaml into a root group,
// validates required fields and keys, and anchors relative working directories
// to the directory of the file that declared them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"ttr/internal/task"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the per-user config and state subdirectories.
	AppName = "ttr"

	// FileName is the task file looked up in every searched directory.
	FileName = ".ttr.yaml"
)

// fileRoot mirrors a task file. The top level only carries groups and tasks.
type fileRoot struct {
	Groups []fileGroup `yaml:"groups"`
	Tasks  []fileTask  `yaml:"tasks"`
}

type fileGroup struct {
	Name   *string     `yaml:"name"`
	Key    *string     `yaml:"key"`
	Groups []fileGroup `yaml:"groups"`
	Tasks  []fileTask  `yaml:"tasks"`
}

type fileTask struct {
	Name       *string           `yaml:"name"`
	Key        *string           `yaml:"key"`
	Cmd        *string           `yaml:"cmd"`
	Confirm    bool              `yaml:"confirm"`
	Clear      bool              `yaml:"clear"`
	WorkingDir *string           `yaml:"working_dir"`
	Env        map[string]string `yaml:"env"`
	ClearEnv   bool              `yaml:"clear_env"`
}

// UserConfigPath returns the lowest-priority task file,
// <user config dir>/ttr/.ttr.yaml.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, AppName, FileName), nil
}

// LoadFile parses the task file at path into a root group. Relative working
// directories are resolved against the file's directory.
func LoadFile(path string) (task.Group, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return task.Group{}, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return task.Group{}, fmt.Errorf("failed to read config file %s: %w", absPath, err)
	}

	root, err := Parse(data, filepath.Dir(absPath))
	if err != nil {
		return task.Group{}, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}
	return root, nil
}

// Parse decodes task file contents. contextDir is the directory relative
// working directories are joined to. An empty document yields an empty root.
func Parse(data []byte, contextDir string) (task.Group, error) {
	var doc fileRoot
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return task.Group{}, err
	}

	groups, err := convertGroups(doc.Groups, "groups")
	if err != nil {
		return task.Group{}, err
	}
	tasks, err := convertTasks(doc.Tasks, "tasks")
	if err != nil {
		return task.Group{}, err
	}

	root := task.NewRoot(groups, tasks)

	var resolveErr error
	root.WalkTasks(func(t *task.Task) {
		if resolveErr != nil || t.WorkingDir == "" {
			return
		}
		resolved, err := ResolveWorkingDir(t.WorkingDir, contextDir)
		if err != nil {
			resolveErr = fmt.Errorf("task %q: %w", t.Name, err)
			return
		}
		t.WorkingDir = resolved
	})
	if resolveErr != nil {
		return task.Group{}, resolveErr
	}
	return root, nil
}

// ResolveWorkingDir expands a leading ~ and joins relative paths to contextDir.
func ResolveWorkingDir(dir, contextDir string) (string, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return dir, fmt.Errorf("could not expand working_dir '%s': %w", dir, err)
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(contextDir, expanded), nil
}

func convertGroups(in []fileGroup, path string) ([]task.Group, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]task.Group, 0, len(in))
	for i, fg := range in {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		if fg.Name == nil {
			return nil, fmt.Errorf("%s: missing %q", elemPath, "name")
		}
		key, err := parseKey(fg.Key, elemPath)
		if err != nil {
			return nil, err
		}
		children, err := convertGroups(fg.Groups, elemPath+".groups")
		if err != nil {
			return nil, err
		}
		tasks, err := convertTasks(fg.Tasks, elemPath+".tasks")
		if err != nil {
			return nil, err
		}
		out = append(out, task.Group{
			Name:   *fg.Name,
			Key:    key,
			Groups: children,
			Tasks:  tasks,
		})
	}
	return out, nil
}

func convertTasks(in []fileTask, path string) ([]task.Task, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]task.Task, 0, len(in))
	for i, ft := range in {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		if ft.Name == nil {
			return nil, fmt.Errorf("%s: missing %q", elemPath, "name")
		}
		key, err := parseKey(ft.Key, elemPath)
		if err != nil {
			return nil, err
		}
		if ft.Cmd == nil {
			return nil, fmt.Errorf("%s (%s): missing %q", elemPath, *ft.Name, "cmd")
		}

		t := task.Task{
			Name:     *ft.Name,
			Key:      key,
			Cmd:      *ft.Cmd,
			Confirm:  ft.Confirm,
			Clear:    ft.Clear,
			Env:      ft.Env,
			ClearEnv: ft.ClearEnv,
		}
		if ft.WorkingDir != nil {
			t.WorkingDir = *ft.WorkingDir
			if t.WorkingDir == "" {
				// Declared but empty: the config file's own directory.
				t.WorkingDir = "."
			}
		}
		if t.Env == nil {
			t.Env = map[string]string{}
		}
		out = append(out, t)
	}
	return out, nil
}

func parseKey(raw *string, elemPath string) (task.Key, error) {
	if raw == nil {
		return 0, fmt.Errorf("%s: missing %q", elemPath, "key")
	}
	if utf8.RuneCountInString(*raw) != 1 {
		return 0, fmt.Errorf("%s: key %q must be a single character", elemPath, *raw)
	}
	r, _ := utf8.DecodeRuneInString(*raw)
	return task.Key(r), nil
}
