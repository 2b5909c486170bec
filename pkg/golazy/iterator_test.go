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

func TestSliceIterator_ExhaustsThenStaysFalse(t *testing.T) {
	it := &sliceIterator[int]{items: []int{1, 2}}
	assert.True(t, it.Next())
	assert.Equal(t, 1, it.Value())
	assert.True(t, it.Next())
	assert.Equal(t, 2, it.Value())
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestSliceIterator_EmptyNeverAdvances(t *testing.T) {
	it := &sliceIterator[int]{items: nil}
	assert.False(t, it.Next())
}

func TestReverseSliceIterator_WalksBackToFront(t *testing.T) {
	it := &reverseSliceIterator[int]{items: []int{1, 2, 3}}
	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestFuncIterator_StopsOnFirstFalse(t *testing.T) {
	i := 0
	it := &funcIterator[int]{next: func() (int, bool) {
		if i >= 2 {
			return 0, false
		}
		i++
		return i, true
	}}
	assert.True(t, it.Next())
	assert.Equal(t, 1, it.Value())
	assert.True(t, it.Next())
	assert.Equal(t, 2, it.Value())
	assert.False(t, it.Next())
}
