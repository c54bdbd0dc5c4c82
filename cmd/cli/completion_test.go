// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"testing"

	"ttr/internal/task"

	"github.com/stretchr/testify/assert"
)

func TestKeyPathCandidates(t *testing.T) {
	t.Parallel()

	tree := task.NewRoot(
		[]task.Group{{
			Name:  "foo",
			Key:   'f',
			Tasks: []task.Task{{Name: "bar", Key: 'b'}, {Name: "boo", Key: 'o'}},
		}},
		[]task.Task{{Name: "top", Key: 't'}},
	)

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "root", prefix: "", want: []string{"f\tfoo/", "t\ttop"}},
		{name: "inside group", prefix: "f", want: []string{"fb\tbar", "fo\tboo"}},
		{name: "complete task", prefix: "fb", want: []string{"fb\tbar"}},
		{name: "past a task", prefix: "tb", want: nil},
		{name: "unknown key", prefix: "x", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, keyPathCandidates(&tree, tt.prefix))
		})
	}
}
