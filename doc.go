// Copyright (c) 2025 The fold authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package fold folds partial data objects into a mutable state tree.

The core operation is [Merge], which walks an incoming value and, for each
key, either descends into an existing sub-object of the destination or
overwrites the destination value wholesale. Branches of the destination
that the incoming value does not mention are left untouched. Every leaf
assignment goes through a [Writer], so a reactivity layer wrapping the
destination can observe new and changed keys; without one, assignments are
plain map writes.

On top of the engine, [State] keeps a state tree together with change
callbacks registered per path. Partial documents are folded in with
[State.Apply] or loaded from a [Source] (such as a watched file, see
package source/file) with [State.Load] and [State.Watch].

The incoming value must be acyclic. The engine performs no cycle detection
and recurses without bound on cyclic input unless an explicit limit is set
with [WithMaxDepth].
*/
package fold
