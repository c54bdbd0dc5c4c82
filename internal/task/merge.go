// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package task

// Merge folds peer groups into one logical group. The input is ordered by
// priority, highest first.
//
// Only groups sharing the first element's name and key take part; the rest are
// discarded. A single remaining group is returned as is. Otherwise child groups
// are bucketed by key and merged recursively, and child tasks are deduplicated by
// key with the first claim winning. A task is skipped when a group with its key
// has already been registered by this or an earlier peer; a group introduced by a
// later peer does not remove a task that was kept before it.
//
// Merged groups are ordered by first registration of their key, merged tasks by
// first claim of theirs.
func Merge(groups []Group) Group {
	if len(groups) == 0 {
		return Group{}
	}

	name, key := groups[0].Name, groups[0].Key
	peers := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.Name == name && g.Key == key {
			peers = append(peers, g)
		}
	}
	if len(peers) == 1 {
		return peers[0]
	}

	var bucketOrder []Key
	buckets := make(map[Key][]Group)
	var taskOrder []Key
	tasks := make(map[Key]Task)

	for _, peer := range peers {
		for _, child := range peer.Groups {
			if _, seen := buckets[child.Key]; !seen {
				bucketOrder = append(bucketOrder, child.Key)
			}
			buckets[child.Key] = append(buckets[child.Key], child)
		}

		for _, t := range peer.Tasks {
			if _, isGroup := buckets[t.Key]; isGroup {
				continue
			}
			if _, claimed := tasks[t.Key]; claimed {
				continue
			}
			taskOrder = append(taskOrder, t.Key)
			tasks[t.Key] = t
		}
	}

	merged := Group{Name: name, Key: key}
	for _, k := range bucketOrder {
		merged.Groups = append(merged.Groups, Merge(buckets[k]))
	}
	for _, k := range taskOrder {
		merged.Tasks = append(merged.Tasks, tasks[k])
	}
	return merged
}

// Collision describes two or more direct children of one group sharing a key.
type Collision struct {
	// Path holds the names of the groups from below the root down to the level
	// where the collision happens. Empty means the root level.
	Path  []string
	Key   Key
	Names []string
}

// Collisions lists every level of the tree where direct children share a key.
// Merge leaves such levels in place when a group comes from a single source, or
// when a group key is introduced by a lower-priority source than a same-keyed task.
func (g *Group) Collisions() []Collision {
	var found []Collision
	g.collectCollisions(nil, &found)
	return found
}

func (g *Group) collectCollisions(path []string, found *[]Collision) {
	var order []Key
	names := make(map[Key][]string)
	add := func(k Key, name string) {
		if _, ok := names[k]; !ok {
			order = append(order, k)
		}
		names[k] = append(names[k], name)
	}
	for _, child := range g.Groups {
		add(child.Key, child.Name)
	}
	for _, t := range g.Tasks {
		add(t.Key, t.Name)
	}
	for _, k := range order {
		if len(names[k]) > 1 {
			*found = append(*found, Collision{
				Path:  append([]string(nil), path...),
				Key:   k,
				Names: names[k],
			})
		}
	}

	for i := range g.Groups {
		child := &g.Groups[i]
		child.collectCollisions(append(path, child.Name), found)
	}
}
