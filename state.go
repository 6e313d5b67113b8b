// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fold

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/fold/internal"
	"github.com/nil-go/fold/internal/maps"
)

// State is a mutable state tree with change callbacks registered per path.
//
// Partial documents are folded into the tree with [State.Apply], or loaded
// from a [Source] with [State.Load]. After an apply, callbacks registered
// with [State.OnChange] run for every registered path whose sub-value
// changed.
//
// To create a new State, call [NewState].
type State struct {
	nocopy internal.NoCopy[State]

	// Options.
	logger    *slog.Logger
	delimiter string
	applyOpts []Option

	// The state tree.
	values   map[string]any
	watchers []WatchSource
	watched  atomic.Bool

	// For change callbacks.
	onChanges      map[string][]func(*State)
	onChangesMutex sync.RWMutex
}

// NewState creates a new State with the given StateOption(s).
func NewState(opts ...StateOption) *State {
	option := &stateOptions{}
	for _, opt := range opts {
		opt(option)
	}

	state := (*State)(option)
	if state.logger == nil {
		state.logger = slog.Default()
	}
	if state.delimiter == "" {
		state.delimiter = "."
	}
	state.values = make(map[string]any)

	return state
}

// Apply folds a partial document into the root of the state tree,
// then runs the callbacks registered for paths whose sub-values changed.
//
// value must be a plain object (map[string]any).
// This method can be called multiple times but it is not concurrency-safe.
func (s *State) Apply(value any, opts ...Option) error {
	s.nocopy.Check()

	return s.apply(func() error {
		return Merge(s.values, value, append(append([]Option(nil), s.applyOpts...), opts...)...)
	})
}

// ApplyKey folds a value into the state tree under the given key.
//
// This method can be called multiple times but it is not concurrency-safe.
func (s *State) ApplyKey(key string, value any, opts ...Option) error {
	s.nocopy.Check()

	return s.apply(func() error {
		return MergeKey(s.values, key, value, append(append([]Option(nil), s.applyOpts...), opts...)...)
	})
}

func (s *State) apply(merge func() error) error {
	old := s.snapshot()
	if err := merge(); err != nil {
		return err
	}
	s.logger.Debug("State has been applied with value.")

	for _, onChange := range s.changed(old) {
		onChange(s)
	}

	return nil
}

// snapshot deep-copies the sub-value of every registered path so it can be
// compared after the in-place merge mutates the tree.
func (s *State) snapshot() map[string]any {
	s.onChangesMutex.RLock()
	defer s.onChangesMutex.RUnlock()

	old := make(map[string]any, len(s.onChanges))
	for path := range s.onChanges {
		old[path] = maps.Clone(maps.Sub(s.values, s.split(path)))
	}

	return old
}

func (s *State) changed(old map[string]any) []func(*State) {
	s.onChangesMutex.RLock()
	defer s.onChangesMutex.RUnlock()

	var callbacks []func(*State)
	for path, onChanges := range s.onChanges {
		if !reflect.DeepEqual(old[path], maps.Sub(s.values, s.split(path))) {
			callbacks = append(callbacks, onChanges...)
		}
	}

	return callbacks
}

// OnChange registers a callback function that is executed
// after an apply changed the value under any of the given paths.
// Registering with no paths watches the whole tree.
//
// The onChange function must be non-blocking and usually completes instantly.
// If it requires a long time to complete, it should be executed in a separate goroutine.
//
// This method is concurrency-safe.
// It panics if onChange is nil.
func (s *State) OnChange(onChange func(*State), paths ...string) {
	if onChange == nil {
		panic("cannot register nil onChange")
	}

	s.nocopy.Check()

	s.onChangesMutex.Lock()
	defer s.onChangesMutex.Unlock()

	if s.onChanges == nil {
		s.onChanges = make(map[string][]func(*State))
	}
	if len(paths) == 0 {
		paths = []string{""}
	}
	for _, path := range paths {
		s.onChanges[path] = append(s.onChanges[path], onChange)
	}
}

// Sub returns the value under the given path, or nil if there is none.
// The returned value is a live view into the tree and must not be mutated.
func (s *State) Sub(path string) any {
	s.nocopy.Check()

	return maps.Sub(s.values, s.split(path))
}

// Unmarshal reads the state tree under the given path
// and decodes it into the given object pointed to by target.
func (s *State) Unmarshal(path string, target any) error {
	s.nocopy.Check()

	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       defaultDecodeHook,
			TagName:          "fold",
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(maps.Sub(s.values, s.split(path))); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// Load loads a document from the given source and folds it into the state
// tree. Sources that also implement [WatchSource] get watched once
// [State.Watch] is called.
//
// This method can be called multiple times but it is not concurrency-safe.
func (s *State) Load(source Source) error {
	s.nocopy.Check()

	if source == nil {
		return errNilSource
	}

	values, err := source.Load()
	if err != nil {
		return fmt.Errorf("load state document: %w", err)
	}
	if values != nil {
		if err := s.Apply(values); err != nil {
			return err
		}
	}

	if watcher, ok := source.(WatchSource); ok {
		s.watchers = append(s.watchers, watcher)
	}

	return nil
}

func (s *State) split(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, s.delimiter)
}

var (
	errNilSource = errors.New("cannot load state document from nil source")

	defaultDecodeHook = mapstructure.ComposeDecodeHookFunc( //nolint:gochecknoglobals
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
)
