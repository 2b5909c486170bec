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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Default(t *testing.T) {
	got := Format[int](FromSlice([]int{1, 2, 3}))
	assert.Equal(t, "[1, 2, 3]", got)
}

func TestFormatTo_CustomOptions(t *testing.T) {
	opts := defaultFormatOptions().WithSeparator(" | ")
	opts.Prefix, opts.Suffix = "(", ")"
	got := FormatTo[int](FromSlice([]int{1, 2, 3}), opts)
	assert.Equal(t, "(1 | 2 | 3)", got)
}

func TestFormatTo_ElementFormat(t *testing.T) {
	opts := defaultFormatOptions().WithElementFormat(func(v any) string {
		return strings.ToUpper(v.(string))
	})
	got := FormatTo[string](FromSlice([]string{"a", "b"}), opts)
	assert.Equal(t, "[A, B]", got)
}

func TestStream(t *testing.T) {
	var b strings.Builder
	err := Stream[int](&b, FromSlice([]int{1, 2}), defaultFormatOptions())
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]", b.String())
}

func TestJSON(t *testing.T) {
	data, err := JSON[int](FromSlice([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.JSONEq(t, "[1,2,3]", string(data))
}

func TestCSV(t *testing.T) {
	rows := FromSlice([][]string{{"a", "1"}, {"b", "2"}})
	out, err := CSV[[]string](rows, func(r []string) []string { return r })
	require.NoError(t, err)
	assert.Equal(t, "a,1\nb,2\n", out)
}

type stringerInt int

func (s stringerInt) String() string { return "n" }

func TestAsStringer(t *testing.T) {
	f := AsStringer[stringerInt]()
	assert.Equal(t, "n", f(stringerInt(5)))
}
