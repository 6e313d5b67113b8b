// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/fold/source/file"
)

func TestFile_Load(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		path        string
		opts        []file.Option
		expected    map[string]any
		err         string
	}{
		{
			description: "file",
			path:        "testdata/state.json",
			expected: map[string]any{
				"server": map[string]any{
					"host": "example.com",
				},
			},
		},
		{
			description: "file (not exist)",
			path:        "not_found.json",
			err:         "read file: open not_found.json: ",
		},
		{
			description: "file (ignore not exist)",
			path:        "not_found.json",
			opts:        []file.Option{file.IgnoreFileNotExist()},
			expected:    nil,
		},
		{
			description: "unmarshal error",
			path:        "testdata/state.json",
			opts: []file.Option{
				file.WithUnmarshal(func([]byte, any) error {
					return errors.New("unmarshal error")
				}),
			},
			err: "unmarshal: unmarshal error",
		},
	}

	for i := range testcases {
		testcase := testcases[i]

		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			values, err := file.New(testcase.path, testcase.opts...).Load()
			if testcase.err != "" {
				require.ErrorContains(t, err, testcase.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, testcase.expected, values)
		})
	}
}

func TestFile_New_panic(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "cannot create File with empty path", func() {
		file.New("")
	})
}

func TestFile_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "file:testdata/state.json", file.New("testdata/state.json").String())
}
