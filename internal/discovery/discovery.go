// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package discovery locates task files along the launcher's search path and
// loads them into a single merged tree. The search order, highest priority
// first, is: the current directory and each ancestor below the home directory,
// then the home directory itself, then the per-user config directory.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"ttr/internal/config"
	"ttr/internal/logger"
	"ttr/internal/task"

	"github.com/mitchellh/go-homedir"
)

// Tier tells which part of the search path a candidate comes from.
type Tier int

const (
	TierDirectory Tier = iota
	TierHome
	TierUserConfig
)

func (t Tier) String() string {
	switch t {
	case TierDirectory:
		return "directory"
	case TierHome:
		return "home"
	case TierUserConfig:
		return "user config"
	default:
		return "unknown"
	}
}

// Source is one candidate task file.
type Source struct {
	Path string
	Tier Tier
}

// Env holds the locations the search path is derived from.
type Env struct {
	WorkDir        string // directory the walk starts from
	HomeDir        string // walk stops here; empty means walk to the filesystem root
	UserConfigFile string // empty when the platform has no config directory
}

// CurrentEnv reads the search locations from the running process.
func CurrentEnv() (Env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Env{}, fmt.Errorf("could not determine current directory: %w", err)
	}

	home, err := homedir.Dir()
	if err != nil {
		logger.Warn("Could not determine home directory, searching up to the filesystem root", "error", err)
		home = ""
	}

	userConfig, err := config.UserConfigPath()
	if err != nil {
		logger.Warn("Skipping per-user config directory", "error", err)
		userConfig = ""
	}

	return Env{WorkDir: wd, HomeDir: home, UserConfigFile: userConfig}, nil
}

// Candidates lists every path the launcher considers, in priority order,
// whether or not a file exists there.
//
// The upward walk never includes the home directory's file: it stops on
// reaching home, and home is appended afterwards as its own tier.
func Candidates(env Env) []Source {
	var sources []Source

	stop := filepath.Clean(string(filepath.Separator))
	if env.HomeDir != "" {
		stop = filepath.Clean(env.HomeDir)
	}

	dir := filepath.Clean(env.WorkDir)
	for {
		if dir == stop {
			break
		}
		sources = append(sources, Source{Path: filepath.Join(dir, config.FileName), Tier: TierDirectory})
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if env.HomeDir != "" {
		sources = append(sources, Source{Path: filepath.Join(env.HomeDir, config.FileName), Tier: TierHome})
	}
	if env.UserConfigFile != "" {
		sources = append(sources, Source{Path: env.UserConfigFile, Tier: TierUserConfig})
	}
	return sources
}

// Exists reports whether a regular file is present at the source path.
func (s Source) Exists() bool {
	info, err := os.Stat(s.Path)
	return err == nil && info.Mode().IsRegular()
}

// FindConfigFiles returns the candidates that exist, highest priority first.
func FindConfigFiles(env Env) []Source {
	var found []Source
	for _, s := range Candidates(env) {
		if s.Exists() {
			logger.Debug("Config file found", "path", s.Path, "tier", s.Tier.String())
			found = append(found, s)
		}
	}
	logger.Info("Config discovery completed", "work_dir", env.WorkDir, "file_count", len(found))
	return found
}

// LoadRoots parses every source into its own root group. Any unreadable or
// malformed file aborts the load.
func LoadRoots(sources []Source) ([]task.Group, error) {
	roots := make([]task.Group, 0, len(sources))
	for _, s := range sources {
		root, err := config.LoadFile(s.Path)
		if err != nil {
			logger.Error("Failed to load config file", "path", s.Path, "error", err)
			return nil, err
		}
		roots = append(roots, root)
	}
	return roots, nil
}

// LoadTree discovers, parses and merges all task files visible from env.
func LoadTree(env Env) (task.Group, []Source, error) {
	sources := FindConfigFiles(env)
	roots, err := LoadRoots(sources)
	if err != nil {
		return task.Group{}, sources, err
	}

	tree := task.Merge(roots)
	logger.Info("Task tree merged",
		"sources", len(roots),
		"groups", len(tree.Groups),
		"tasks", len(tree.Tasks))
	return tree, sources, nil
}
