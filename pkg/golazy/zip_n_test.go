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

func TestZip3_StopsAtShortestInput(t *testing.T) {
	z := Zip3(
		FromSlice([]int{1, 2, 3}),
		FromSlice([]string{"a", "b"}),
		FromSlice([]bool{true, false, true}),
	)

	var got []Triple[int, string, bool]
	for it := z.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []Triple[int, string, bool]{
		{First: 1, Second: "a", Third: true},
		{First: 2, Second: "b", Third: false},
	}, got)

	sized, ok := z.(Sized)
	require.True(t, ok)
	assert.Equal(t, 2, sized.Len())
}

func TestZip3_ReverseIter(t *testing.T) {
	z := Zip3(
		FromSlice([]int{1, 2, 3}),
		FromSlice([]string{"a", "b"}),
		FromSlice([]bool{true, false, true}),
	)
	rev, ok := z.(Reversible[Triple[int, string, bool]])
	require.True(t, ok)

	var got []Triple[int, string, bool]
	for it := rev.ReverseIter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []Triple[int, string, bool]{
		{First: 2, Second: "b", Third: false},
		{First: 1, Second: "a", Third: true},
	}, got)
}

func TestZip4_StopsAtShortestInputAndIsSized(t *testing.T) {
	z := Zip4(
		FromSlice([]int{1, 2, 3}),
		FromSlice([]int{10, 20, 30}),
		FromSlice([]int{100, 200}),
		FromSlice([]int{1000, 2000, 3000}),
	)

	var got []Quad[int, int, int, int]
	for it := z.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []Quad[int, int, int, int]{
		{First: 1, Second: 10, Third: 100, Fourth: 1000},
		{First: 2, Second: 20, Third: 200, Fourth: 2000},
	}, got)

	sized, ok := z.(Sized)
	require.True(t, ok)
	assert.Equal(t, 2, sized.Len())
}

func TestZip4_ReverseIter(t *testing.T) {
	z := Zip4(
		FromSlice([]int{1, 2, 3}),
		FromSlice([]int{10, 20, 30}),
		FromSlice([]int{100, 200}),
		FromSlice([]int{1000, 2000, 3000}),
	)
	rev, ok := z.(Reversible[Quad[int, int, int, int]])
	require.True(t, ok)

	var got []Quad[int, int, int, int]
	for it := rev.ReverseIter(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []Quad[int, int, int, int]{
		{First: 2, Second: 20, Third: 200, Fourth: 2000},
		{First: 1, Second: 10, Third: 100, Fourth: 1000},
	}, got)
}
