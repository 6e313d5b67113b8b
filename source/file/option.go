// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file

import "log/slog"

// WithUnmarshal provides the function used to parse the state document file.
// The unmarshal function must be able to unmarshal the file content into a
// map[string]any.
//
// The default function is json.Unmarshal.
func WithUnmarshal(unmarshal func([]byte, any) error) Option {
	return func(options *options) {
		options.unmarshal = unmarshal
	}
}

// IgnoreFileNotExist returns a nil document instead of an error
// if the state document file is not found.
func IgnoreFileNotExist() Option {
	return func(options *options) {
		options.ignoreNotExist = true
	}
}

// WithLogger provides the slog.Logger for the File source.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a File with specific options.
	Option  func(options *options)
	options File
)
