// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Clone deep-copies the map structure of value. Leaf values are shared:
// merges replace leaves wholesale, so a leaf never mutates in place.
func Clone(value any) any {
	m, ok := value.(map[string]any)
	if !ok {
		return value
	}

	cloned := make(map[string]any, len(m))
	for k, v := range m {
		cloned[k] = Clone(v)
	}

	return cloned
}
