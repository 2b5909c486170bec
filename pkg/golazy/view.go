// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package golazy

// View is the contract every lazy range in this package satisfies: a value
// object that can produce fresh, independent Iterators on demand.
//
// Calling Iter() twice must yield iterators that traverse the identical
// sequence (the "idempotence of begin()" property); two iterators obtained
// this way may be driven concurrently by independent consumers.
//
// A View performs no work at construction time beyond capturing its
// arguments; all traversal work happens lazily, inside Next/Value calls on
// the iterators it produces.
type View[T any] interface {
	Iter() Iterator[T]
}

// FromSlice lifts a slice into a View. The returned view is Sized,
// Reversible and RandomAccess: a slice is the strongest possible upstream.
//
// The slice is not copied; mutating it while a view/iterator derived from it
// is in use is the caller's responsibility to avoid (same discipline as
// iterating a slice directly with a for-range loop while mutating it).
func FromSlice[T any](items []T) sliceView[T] {
	return sliceView[T]{items: items}
}

// Of is a convenience wrapper around FromSlice for literal element lists:
// golazy.Of(1, 2, 3) reads better at a call site than
// golazy.FromSlice([]int{1, 2, 3}).
func Of[T any](items ...T) sliceView[T] {
	return FromSlice(items)
}

// sliceView is the canonical RandomAccess + Reversible + Sized view. Most
// adaptors special-case it only through the Sized/Reversible/RandomAccess
// interfaces, never by referring to this concrete type, so any other
// RandomAccess source composes identically.
type sliceView[T any] struct {
	items []T
}

func (v sliceView[T]) Iter() Iterator[T] {
	return &sliceIterator[T]{items: v.items}
}

func (v sliceView[T]) ReverseIter() Iterator[T] {
	return &reverseSliceIterator[T]{items: v.items}
}

func (v sliceView[T]) Len() int {
	return len(v.items)
}

func (v sliceView[T]) At(i int) T {
	return v.items[i]
}

// Slice returns the materialized backing slice without copying it. No
// adaptor in this package calls it; they all read a sliceView through At
// or its iterators.
func (v sliceView[T]) Slice() []T {
	return v.items
}

// FromFunc builds a forward-only View from a generator function. next
// should return (zero, false) exactly once processing is exhausted, and
// keep returning (zero, false) on every subsequent call (mirroring the
// Iterator contract). Every call to Iter() invokes gen again, so gen must
// be repeatable (e.g. a closure creating fresh state) if the resulting view
// needs to support more than one traversal.
func FromFunc[T any](gen func() (next func() (T, bool))) funcView[T] {
	return funcView[T]{gen: gen}
}

type funcView[T any] struct {
	gen func() (next func() (T, bool))
}

func (v funcView[T]) Iter() Iterator[T] {
	return &funcIterator[T]{next: v.gen()}
}

// Empty returns a view with no elements. It is Sized (size 0), Reversible
// and RandomAccess trivially.
func Empty[T any]() sliceView[T] {
	return sliceView[T]{}
}
