// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fold

// Writer is the capability used for every leaf assignment of a merge.
//
// Set installs or overwrites object[key] = value. An implementation backed
// by a reactivity framework should also notify observers of object about
// the new or changed key. The merge engine never writes destination keys
// except through a Writer.
type Writer interface {
	Set(object map[string]any, key string, value any)
}

// WriterFunc is an adapter to allow the use of ordinary functions as
// Writers.
type WriterFunc func(object map[string]any, key string, value any)

func (f WriterFunc) Set(object map[string]any, key string, value any) {
	f(object, key, value)
}

// rawWriter is the default Writer: a plain map assignment with no
// notification.
type rawWriter struct{}

func (rawWriter) Set(object map[string]any, key string, value any) {
	object[key] = value
}
