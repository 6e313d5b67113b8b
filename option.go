// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fold

import "log/slog"

// KeepExisting keeps existing destination values when the incoming value is
// nil: the assignment is skipped entirely instead of overwriting with nil.
//
// By default a nil value overwrites like any other leaf.
func KeepExisting() Option {
	return func(options *options) {
		options.keepExisting = true
	}
}

// WithWriter provides the [Writer] used for leaf assignments,
// so a reactivity framework wrapping the destination is notified
// of every new or changed key.
//
// The default writer performs a plain map assignment.
func WithWriter(writer Writer) Option {
	return func(options *options) {
		options.writer = writer
	}
}

// WithMaxDepth limits how deep the merge recurses into the incoming value.
// A value nested deeper than depth fails the merge with [ErrTooDeep].
//
// By default there is no limit, which recurses without bound on cyclic
// input. The limit only guards recursion: an object installed wholesale
// under a brand-new key is not scanned for depth.
func WithMaxDepth(depth int) Option {
	return func(options *options) {
		options.maxDepth = depth
	}
}

// Option configures a merge with specific options.
type Option func(*options)

type options struct {
	keepExisting bool
	maxDepth     int
	writer       Writer
}

func apply(opts []Option) *options {
	option := &options{
		writer: rawWriter{},
	}
	for _, opt := range opts {
		opt(option)
	}

	return option
}

// WithLogHandler provides the slog.Handler for logs from the State.
//
// By default, it uses the handler of slog.Default().
func WithLogHandler(handler slog.Handler) StateOption {
	return func(options *stateOptions) {
		if handler != nil {
			options.logger = slog.New(handler)
		}
	}
}

// WithDelimiter provides the delimiter used when specifying paths into the
// state tree.
//
// The default delimiter is `.`, which makes paths like `parent.child.key`.
func WithDelimiter(delimiter string) StateOption {
	return func(options *stateOptions) {
		options.delimiter = delimiter
	}
}

// WithApplyOption provides merge Option(s) applied on every
// [State.Apply] and [State.ApplyKey], e.g. [KeepExisting] for the whole
// State.
func WithApplyOption(opts ...Option) StateOption {
	return func(options *stateOptions) {
		options.applyOpts = append(options.applyOpts, opts...)
	}
}

// StateOption configures a State with specific options.
type StateOption func(*stateOptions)

type stateOptions State
