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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatenate_RandomAccess(t *testing.T) {
	v := Concatenate[int](FromSlice([]int{1, 2}), FromSlice([]int{3, 4, 5}))

	ra, ok := v.(RandomAccess[int])
	require.True(t, ok)
	assert.Equal(t, 5, ra.Len())
	assert.Equal(t, 1, ra.At(0))
	assert.Equal(t, 4, ra.At(3))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ToSlice[int](v))
}

func TestConcatenate_ReverseIterOverSlices(t *testing.T) {
	v := Concatenate[int](FromSlice([]int{1, 2}), FromSlice([]int{3, 4, 5}))
	rv, ok := v.(Reversible[int])
	require.True(t, ok)

	var got []int
	for it := rv.ReverseIter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)
}

func TestConcatenate_RandomAccessOnlyStillReverses(t *testing.T) {
	a := randomAccessOnlyInts{items: []int{1, 2}}
	b := randomAccessOnlyInts{items: []int{3, 4, 5}}

	v := Concatenate[int](a, b)
	_, isReversibleInput := any(a).(Reversible[int])
	require.False(t, isReversibleInput, "fixture must not itself be Reversible")

	rv, ok := v.(Reversible[int])
	require.True(t, ok, "Concatenate over RandomAccess-only inputs must still expose ReverseIter")

	var got []int
	for it := rv.ReverseIter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)
}

func TestConcatenate_GenericFallback(t *testing.T) {
	gen := func(items []int) View[int] {
		return FromFunc(func() func() (int, bool) {
			i := 0
			return func() (int, bool) {
				if i >= len(items) {
					return 0, false
				}
				v := items[i]
				i++
				return v, true
			}
		})
	}
	v := Concatenate[int](gen([]int{1, 2}), gen([]int{3}))
	assert.Equal(t, []int{1, 2, 3}, ToSlice[int](v))

	_, sized := Len[int](v)
	assert.False(t, sized)
}
