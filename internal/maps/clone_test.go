// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps_test

import (
	"testing"

	"github.com/nil-go/fold/internal/assert"
	"github.com/nil-go/fold/internal/maps"
)

func TestClone(t *testing.T) {
	t.Parallel()

	original := map[string]any{
		"a": 1,
		"b": map[string]any{"c": []int{1, 2}},
	}

	cloned, ok := maps.Clone(original).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, original, cloned)

	// Mutating the original map structure does not leak into the clone.
	original["b"].(map[string]any)["c"] = "changed"
	assert.Equal(t, []int{1, 2}, cloned["b"].(map[string]any)["c"].([]int))
}

func TestClone_leaf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, maps.Clone(42).(int))
	assert.Equal(t, nil, maps.Clone(nil))
}
