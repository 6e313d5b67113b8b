// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fold

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Watch watches every loaded [WatchSource] and folds changed documents into
// the state tree as they arrive. Applies are serialized through a single
// loop, so watched sources never race each other; applies from other
// goroutines are not synchronized and must not overlap a running Watch.
// It blocks until ctx is done, or a source returns an error.
// WARNING: All sources passed in Load after calling Watch do not get watched.
//
// It only can be called once. Call after first has no effects.
// It panics if ctx is nil.
func (s *State) Watch(ctx context.Context) error {
	if ctx == nil {
		panic("cannot watch change with nil context")
	}

	s.nocopy.Check()

	if len(s.watchers) == 0 {
		return nil
	}
	if !s.watched.CompareAndSwap(false, true) {
		s.logger.Warn("State has been watched, call Watch again has no effects.")

		return nil
	}

	changeChannel := make(chan map[string]any)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for {
			select {
			case values := <-changeChannel:
				if err := s.Apply(values); err != nil {
					s.logger.WarnContext(ctx, "Error when applying changed state document.", "error", err)

					continue
				}
				s.logger.DebugContext(ctx, "State has been updated with change.")

			case <-ctx.Done():
				return nil
			}
		}
	})

	for _, watcher := range s.watchers {
		watcher := watcher

		group.Go(func() error {
			onChange := func(values map[string]any) {
				if values == nil {
					return
				}

				select {
				case changeChannel <- values:
					s.logger.Info("State document has been changed.", "source", watcher)
				case <-ctx.Done():
				}
			}

			s.logger.DebugContext(ctx, "Watching state document change.", "source", watcher)
			if err := watcher.Watch(ctx, onChange); err != nil {
				return fmt.Errorf("watch state document change: %w", err)
			}

			return nil
		})
	}

	return group.Wait()
}
