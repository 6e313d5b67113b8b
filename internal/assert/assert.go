// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package assert

import (
	"errors"
	"reflect"
	"testing"
)

func Equal[T any](tb testing.TB, expected, actual T) {
	tb.Helper()

	if !reflect.DeepEqual(expected, actual) {
		tb.Errorf("expected: %v; actual: %v", expected, actual)
	}
}

func NoError(tb testing.TB, err error) {
	tb.Helper()

	if err != nil {
		tb.Errorf("unexpected error: %v", err)
	}
}

func EqualError(tb testing.TB, err error, message string) {
	tb.Helper()

	if err.Error() != message {
		tb.Errorf("expected: %v; actual: %v", message, err.Error())
	}
}

func ErrorIs(tb testing.TB, err, target error) {
	tb.Helper()

	if !errors.Is(err, target) {
		tb.Errorf("expected error: %v; actual: %v", target, err)
	}
}

func True(tb testing.TB, value bool) {
	tb.Helper()

	if !value {
		tb.Errorf("expected True")
	}
}

func Same(tb testing.TB, expected, actual any) {
	tb.Helper()

	if reflect.ValueOf(expected).Pointer() != reflect.ValueOf(actual).Pointer() {
		tb.Errorf("expected same reference: %v; actual: %v", expected, actual)
	}
}
