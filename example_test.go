// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fold_test

import (
	"fmt"

	"github.com/nil-go/fold"
)

func ExampleMerge() {
	state := map[string]any{"foo": 1, "bar": 0}
	if err := fold.Merge(state, map[string]any{"foo": 2, "fizz": 4}); err != nil {
		// Handle error here.
		panic(err)
	}
	fmt.Println(state["foo"], state["bar"], state["fizz"])
	// Output: 2 0 4
}

func ExampleMergeKey() {
	state := map[string]any{
		"bar": map[string]any{"1": "Marcia", "2": "Peter"},
	}
	if err := fold.MergeKey(state, "bar", map[string]any{"1": "Jan"}); err != nil {
		// Handle error here.
		panic(err)
	}
	bar := state["bar"].(map[string]any) //nolint:forcetypeassert
	fmt.Println(bar["1"], bar["2"])
	// Output: Jan Peter
}

func ExampleKeepExisting() {
	state := map[string]any{"fee": map[string]any{"id": 1}}
	if err := fold.Merge(state, map[string]any{"fee": nil}, fold.KeepExisting()); err != nil {
		// Handle error here.
		panic(err)
	}
	fmt.Println(state["fee"])
	// Output: map[id:1]
}

func ExampleWithWriter() {
	writer := fold.WriterFunc(func(object map[string]any, key string, value any) {
		object[key] = value
		fmt.Println("set", key, "=", value)
	})

	state := map[string]any{}
	if err := fold.Merge(state, map[string]any{"greeting": "hello"}, fold.WithWriter(writer)); err != nil {
		// Handle error here.
		panic(err)
	}
	// Output: set greeting = hello
}

func ExampleState() {
	state := fold.NewState()
	if err := state.Apply(map[string]any{
		"server": map[string]any{"host": "localhost", "port": 8080},
	}); err != nil {
		// Handle error here.
		panic(err)
	}

	state.OnChange(func(state *fold.State) {
		fmt.Println("host is now", state.Sub("server.host"))
	}, "server.host")

	if err := state.Apply(map[string]any{
		"server": map[string]any{"host": "example.com"},
	}); err != nil {
		// Handle error here.
		panic(err)
	}
	fmt.Println(state.Sub("server.port"))
	// Output:
	// host is now example.com
	// 8080
}

func ExampleState_Unmarshal() {
	state := fold.NewState()
	if err := state.Apply(map[string]any{
		"server": map[string]any{"host": "example.com", "port": 8080},
	}); err != nil {
		// Handle error here.
		panic(err)
	}

	server := struct {
		Host string
		Port int
	}{}
	if err := state.Unmarshal("server", &server); err != nil {
		// Handle error here.
		panic(err)
	}
	fmt.Printf("%s:%d\n", server.Host, server.Port)
	// Output: example.com:8080
}
