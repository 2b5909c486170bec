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

// Package golazytext adapts golazy views to text-oriented sources,
// built on bufio.Scanner the way a bufio.SplitFunc is normally plugged
// into a Scanner: splitting happens incrementally, one token at a time,
// rather than by eagerly slicing the whole string up front.
package golazytext

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"github.com/kaaserne/golazy/pkg/golazy"
)

// SplitString splits s on every occurrence of any separator in seps,
// lazily: nothing is scanned until the returned view's iterator is
// pulled from. Consecutive separators produce empty tokens, and an
// empty or separator-terminated s produces a trailing empty token too,
// matching strings.Split rather than strings.Fields.
//
// bufio.Scanner's own token contract can never represent that final
// trailing token: a SplitFunc must report (0, nil, nil) once atEOF and
// the buffer is empty, so a Scanner used directly always swallows it.
// This wraps the Scanner and emits the one token it cannot.
func SplitString(s string, seps ...rune) golazy.View[string] {
	isSep := func(r rune) bool {
		for _, sep := range seps {
			if r == sep {
				return true
			}
		}
		return false
	}
	return golazy.FromFunc(func() func() (string, bool) {
		sc := bufio.NewScanner(strings.NewReader(s))
		sc.Buffer(nil, len(s)+1)
		sc.Split(splitOnRunes(seps))
		endsOnSep := s == "" || isSep(lastRune(s))
		done := false
		return func() (string, bool) {
			if done {
				return "", false
			}
			if sc.Scan() {
				return sc.Text(), true
			}
			if endsOnSep {
				endsOnSep = false
				done = true
				return "", true
			}
			done = true
			return "", false
		}
	})
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// splitOnRunes returns a bufio.SplitFunc for a Scanner that tokenizes on
// any of seps, analogous in shape to textual.ScanLines but parameterized
// over an arbitrary separator set instead of a hardcoded '\n'.
func splitOnRunes(seps []rune) bufio.SplitFunc {
	isSep := func(r rune) bool {
		for _, sep := range seps {
			if r == sep {
				return true
			}
		}
		return false
	}
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := strings.IndexFunc(string(data), isSep); i >= 0 {
			_, width := utf8.DecodeRune(data[i:])
			return i + width, data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
