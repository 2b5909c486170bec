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

func isComma(r rune) bool { return r == ',' }

func TestSplit_DropsSeparators(t *testing.T) {
	v := Split[rune](FromSlice([]rune("a,b,c")), isComma)

	var got []string
	for it := v.Iter(); it.Next(); {
		got = append(got, string(it.Value()))
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSplit_TrailingSeparatorYieldsFinalEmptyGroup(t *testing.T) {
	v := Split[rune](FromSlice([]rune("a,")), isComma)

	var got []string
	for it := v.Iter(); it.Next(); {
		got = append(got, string(it.Value()))
	}
	assert.Equal(t, []string{"a", ""}, got)
}

func TestSplit_EmptySourceYieldsOneEmptyGroup(t *testing.T) {
	v := Split[rune](Empty[rune](), isComma)

	var got []string
	for it := v.Iter(); it.Next(); {
		got = append(got, string(it.Value()))
	}
	assert.Equal(t, []string{""}, got)
}

func TestSplit_ConsecutiveSeparatorsProduceEmptyGroup(t *testing.T) {
	v := Split[rune](FromSlice([]rune("a,,b")), isComma)

	var got []string
	for it := v.Iter(); it.Next(); {
		got = append(got, string(it.Value()))
	}
	assert.Equal(t, []string{"a", "", "b"}, got)
}
