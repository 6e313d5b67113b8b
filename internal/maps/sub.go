// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Sub returns the value under the given path, or nil if the path leads
// through a missing key or a non-map value. An empty path returns values
// itself.
func Sub(values map[string]any, path []string) any {
	if len(path) == 0 {
		return values
	}

	value := values[path[0]]
	if len(path) == 1 {
		return value
	}

	if mp, ok := value.(map[string]any); ok {
		return Sub(mp, path[1:])
	}

	return nil
}
