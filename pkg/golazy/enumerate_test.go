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

func TestEnumerate_OverSlice(t *testing.T) {
	v := Enumerate[string](FromSlice([]string{"a", "b", "c"}))

	ra, ok := v.(RandomAccess[Pair[int, string]])
	require.True(t, ok)
	assert.Equal(t, 3, ra.Len())
	assert.Equal(t, Pair[int, string]{1, "b"}, ra.At(1))

	got := ToSlice[Pair[int, string]](v)
	want := []Pair[int, string]{{0, "a"}, {1, "b"}, {2, "c"}}
	assert.Equal(t, want, got)
}

func TestEnumerate_RandomAccessReverseIter(t *testing.T) {
	v := Enumerate[string](FromSlice([]string{"a", "b", "c"}))
	rv, ok := v.(Reversible[Pair[int, string]])
	require.True(t, ok)

	var got []Pair[int, string]
	for it := rv.ReverseIter(); it.Next(); {
		got = append(got, it.Value())
	}
	want := []Pair[int, string]{{2, "c"}, {1, "b"}, {0, "a"}}
	assert.Equal(t, want, got)
}

func TestEnumerate_SizedReversibleNonRandomSource(t *testing.T) {
	src := sizedReversibleOnlyStrings{items: []string{"x", "y", "z"}}
	v := Enumerate[string](src)

	_, isRandom := v.(RandomAccess[Pair[int, string]])
	require.False(t, isRandom)

	rv, ok := v.(Reversible[Pair[int, string]])
	require.True(t, ok)

	var got []Pair[int, string]
	for it := rv.ReverseIter(); it.Next(); {
		got = append(got, it.Value())
	}
	want := []Pair[int, string]{{2, "z"}, {1, "y"}, {0, "x"}}
	assert.Equal(t, want, got)
}

// sizedReversibleOnlyStrings is Sized and Reversible but deliberately not
// RandomAccess, to exercise Enumerate's sized-and-reversible (non-random)
// branch independently of its random-access fast path.
type sizedReversibleOnlyStrings struct{ items []string }

func (s sizedReversibleOnlyStrings) Len() int { return len(s.items) }
func (s sizedReversibleOnlyStrings) Iter() Iterator[string] {
	return &sliceIterator[string]{items: s.items}
}
func (s sizedReversibleOnlyStrings) ReverseIter() Iterator[string] {
	return &reverseSliceIterator[string]{items: s.items}
}
