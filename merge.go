// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fold

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKey is returned when a non-object value is merged without a key,
	// so there is nowhere to assign it.
	ErrNoKey = errors.New("cannot merge non-object value without a key")
	// ErrTooDeep is returned when the incoming value nests deeper than the
	// limit set with WithMaxDepth.
	ErrTooDeep = errors.New("merge exceeds maximum depth")
)

// Merge folds value into state in place.
//
// For each key in value, the corresponding destination value is either
// merged recursively (when both sides hold a plain object under an existing
// key) or overwritten wholesale through the configured [Writer]. Keys of
// state that value does not mention are untouched. A nested object whose
// key does not yet exist in the destination is installed by reference,
// not cloned.
//
// value must be a plain object (map[string]any); merging any other value
// requires a key and is done with [MergeKey]. A nil error means the whole
// value has been folded in; on error the destination may hold a partially
// applied value.
//
// Merge holds no state between calls. Concurrent merges into disjoint
// destination trees are safe; merges into overlapping trees must be
// serialized by the caller.
func Merge(state map[string]any, value any, opts ...Option) error {
	if _, ok := container(value); !ok {
		return fmt.Errorf("%w: %T", ErrNoKey, value)
	}

	option := apply(opts)

	return option.fold(state, "", false, value, 0)
}

// MergeKey folds value into state under the given key.
//
// It behaves like [Merge] with the traversal rooted at state[key]:
// a plain-object value merges into an existing object under key, and any
// other value (or an object under a brand-new key) replaces state[key]
// wholesale.
func MergeKey(state map[string]any, key string, value any, opts ...Option) error {
	option := apply(opts)

	return option.fold(state, key, true, value, 0)
}

// container reports whether value is a plain object eligible for recursive
// descent. Everything else is a leaf: primitives, slices, times, funcs,
// typed nils, untyped nil, and map types other than map[string]any.
// Keep all classification here so the leaf set is maintained in one place.
func container(value any) (map[string]any, bool) {
	m, ok := value.(map[string]any)

	return m, ok && m != nil
}

func (o *options) fold(dst map[string]any, key string, hasKey bool, value any, depth int) error {
	if o.maxDepth > 0 && depth > o.maxDepth {
		return fmt.Errorf("%w: %d", ErrTooDeep, o.maxDepth)
	}

	if src, ok := container(value); ok {
		target, descend := dst, !hasKey
		if hasKey {
			// Descend only into an existing sub-object. A brand-new key is
			// installed wholesale below; an existing leaf is overwritten.
			if sub, ok := container(dst[key]); ok {
				target, descend = sub, true
			}
		}
		if descend {
			for k, v := range src {
				if err := o.fold(target, k, true, v, depth+1); err != nil {
					return err
				}
			}

			return nil
		}
	}

	if value == nil && o.keepExisting {
		return nil
	}
	o.writer.Set(dst, key, value)

	return nil
}
