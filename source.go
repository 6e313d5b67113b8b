// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fold

import "context"

// Source is the interface that wraps the basic Load method.
//
// Load loads a partial state document and returns it as a nested
// map[string]any. A nil map means the source currently has no document
// and the state is left untouched.
type Source interface {
	Load() (map[string]any, error)
}

// WatchSource is a Source that also watches its document for changes.
//
// Watch blocks until ctx is done, calling onChange with the new document
// every time it changes. A nil document reported to onChange means the
// document is gone and is ignored by [State.Watch].
type WatchSource interface {
	Source
	Watch(ctx context.Context, onChange func(map[string]any)) error
}
