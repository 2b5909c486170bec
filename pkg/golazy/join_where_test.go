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
)

func TestJoinWhere_EmitsOnlyMatchingPairs(t *testing.T) {
	left := FromSlice([]int{1, 2, 3})
	right := FromSlice([]int{2, 3, 4})

	j := JoinWhere[int, int, string](left, right,
		func(a, b int) bool { return a == b },
		func(a, b int) string { return "matched" },
	)

	var got []string
	for it := j.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []string{"matched", "matched"}, got)
}

func TestJoinWhere_NoMatchesYieldsNothing(t *testing.T) {
	left := FromSlice([]int{1, 2})
	right := FromSlice([]int{10, 20})

	j := JoinWhere[int, int, int](left, right,
		func(a, b int) bool { return a == b },
		func(a, b int) int { return a + b },
	)

	var got []int
	for it := j.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Empty(t, got)
}

func TestJoinWhere_RowWithMultipleMatchesEmitsEachPair(t *testing.T) {
	left := FromSlice([]int{1})
	right := FromSlice([]int{10, 20, 30})

	j := JoinWhere[int, int, int](left, right,
		func(a, b int) bool { return true },
		func(a, b int) int { return a + b },
	)

	var got []int
	for it := j.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{11, 21, 31}, got)
}
