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

func TestZip2_StopsAtShorterInput(t *testing.T) {
	z := Zip2(FromSlice([]int{1, 2, 3}), FromSlice([]string{"a", "b"}))

	var got []Pair[int, string]
	for it := z.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
	}, got)
}

func TestZip2_LenIsMinOfBothSizes(t *testing.T) {
	z := Zip2(FromSlice([]int{1, 2, 3}), FromSlice([]string{"a", "b"}))
	sized, ok := z.(Sized)
	require.True(t, ok)
	assert.Equal(t, 2, sized.Len())
}

func TestZip2_ReverseIterAlignsOnShortestInput(t *testing.T) {
	z := Zip2(FromSlice([]int{1, 2, 3, 4}), FromSlice([]string{"a", "b"}))
	rev, ok := z.(Reversible[Pair[int, string]])
	require.True(t, ok)

	var got []Pair[int, string]
	for it := rev.ReverseIter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []Pair[int, string]{
		{First: 2, Second: "b"},
		{First: 1, Second: "a"},
	}, got)
}

func TestZip2_NotReversibleWhenOneInputIsNot(t *testing.T) {
	gen := FromFunc(func() func() (int, bool) {
		i := 0
		return func() (int, bool) {
			if i >= 2 {
				return 0, false
			}
			i++
			return i, true
		}
	})
	z := Zip2[int, int](FromSlice([]int{1, 2, 3}), gen)
	_, ok := z.(Reversible[Pair[int, int]])
	assert.False(t, ok)
}
