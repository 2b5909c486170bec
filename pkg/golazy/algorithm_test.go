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

func TestFind(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	got, ok := Find[int](v, func(x int) bool { return x > 2 })
	require.True(t, ok)
	assert.Equal(t, 3, got)

	_, ok = Find[int](v, func(x int) bool { return x > 10 })
	assert.False(t, ok)
}

func TestFindLast_UsesReverseIterWhenAvailable(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 2, 1})
	got, ok := FindLast[int](v, func(x int) bool { return x == 2 })
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestFindLast_FallsBackWithoutReverseIter(t *testing.T) {
	gen := FromFunc(func() func() (int, bool) {
		items := []int{1, 2, 3, 2, 1}
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
	got, ok := FindLast[int](gen, func(x int) bool { return x == 2 })
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestIndexOfAndContains(t *testing.T) {
	v := FromSlice([]int{5, 6, 7})
	assert.Equal(t, 1, IndexOf[int](v, 6))
	assert.Equal(t, NPos, IndexOf[int](v, 99))
	assert.True(t, Contains[int](v, 7))
	assert.False(t, Contains[int](v, 99))
}

func TestStartsWithAndEndsWith(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	assert.True(t, StartsWith[int](v, FromSlice([]int{1, 2})))
	assert.False(t, StartsWith[int](v, FromSlice([]int{2, 2})))
	assert.True(t, EndsWith[int](v, FromSlice([]int{3, 4})))
	assert.False(t, EndsWith[int](v, FromSlice([]int{1, 2, 3, 4, 5})))
}

func TestPartition(t *testing.T) {
	assert.True(t, Partition[int](FromSlice([]int{2, 4, 1, 3}), func(x int) bool { return x%2 == 0 }))
	assert.False(t, Partition[int](FromSlice([]int{2, 1, 4, 3}), func(x int) bool { return x%2 == 0 }))
}

func TestAccumulate(t *testing.T) {
	sum := Accumulate[int, int](FromSlice([]int{1, 2, 3, 4}), 0, func(acc, cur int) int { return acc + cur })
	assert.Equal(t, 10, sum)
}

func TestForEach(t *testing.T) {
	var seen []int
	ForEach[int](FromSlice([]int{1, 2, 3}), func(x int) { seen = append(seen, x) })
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestCopyAndTransform(t *testing.T) {
	dst := make([]int, 2)
	n := Copy[int](FromSlice([]int{1, 2, 3}), dst)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 2}, dst)

	dst2 := make([]int, 3)
	n2 := Transform[int](FromSlice([]int{1, 2, 3, 4}), dst2, func(x int) int { return x * 2 })
	assert.Equal(t, 3, n2)
	assert.Equal(t, []int{2, 4, 6}, dst2)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal[int](FromSlice([]int{1, 2, 3}), FromSlice([]int{1, 2, 3})))
	assert.False(t, Equal[int](FromSlice([]int{1, 2, 3}), FromSlice([]int{1, 2})))
	assert.False(t, Equal[int](FromSlice([]int{1, 2, 3}), FromSlice([]int{1, 2, 4})))
}

func TestLowerUpperBoundAndBinarySearch(t *testing.T) {
	v := FromSlice([]int{1, 3, 3, 5, 7})
	assert.Equal(t, 1, LowerBound[int](v, 3))
	assert.Equal(t, 3, UpperBound[int](v, 3))
	assert.True(t, BinarySearch[int](v, 5))
	assert.False(t, BinarySearch[int](v, 4))
}

func TestAllAnyNoneOf(t *testing.T) {
	v := FromSlice([]int{2, 4, 6})
	even := func(x int) bool { return x%2 == 0 }
	assert.True(t, AllOf[int](v, even))
	assert.True(t, AnyOf[int](v, even))
	assert.False(t, NoneOf[int](v, even))
}

func TestAdjacentFind(t *testing.T) {
	v := FromSlice([]int{1, 2, 2, 3})
	idx := AdjacentFind[int](v, func(a, b int) bool { return a == b })
	assert.Equal(t, 1, idx)
	assert.Equal(t, NPos, AdjacentFind[int](FromSlice([]int{1, 2, 3}), func(a, b int) bool { return a == b }))
}

func TestCountAndCountIf(t *testing.T) {
	v := FromSlice([]int{1, 2, 2, 3, 2})
	assert.Equal(t, 3, Count[int](v, 2))
	assert.Equal(t, 3, CountIf[int](v, func(x int) bool { return x == 2 }))
}

func TestIsSorted(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	assert.True(t, IsSorted[int](FromSlice([]int{1, 2, 2, 3}), less))
	assert.False(t, IsSorted[int](FromSlice([]int{1, 3, 2}), less))
}

func TestMinMaxElement(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	min, ok := MinElement[int](FromSlice([]int{3, 1, 2}), less)
	require.True(t, ok)
	assert.Equal(t, 1, min)

	max, ok := MaxElement[int](FromSlice([]int{3, 1, 2}), less)
	require.True(t, ok)
	assert.Equal(t, 3, max)

	_, ok = MinElement[int](Empty[int](), less)
	assert.False(t, ok)
}
