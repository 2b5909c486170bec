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

// Package words holds the text-processing glue behind the golazy-demo
// CLI: turning a whole file into golazy views over lines and words, and
// running the library's adaptors and terminals over them.
package words

import (
	"strings"
	"unicode"

	"github.com/kaaserne/golazy/pkg/golazy"
	"github.com/kaaserne/golazy/pkg/golazytext"
)

// ReverseLines reverses every word of every line in text, preserving
// punctuation, whitespace and casing pattern, exactly as the original
// reverse-words example did. When twice is true, each line is piped
// through the reversal twice via a golazy.Pipeline, restoring the
// original text.
func ReverseLines(text string, twice bool) string {
	lines := golazytext.SplitString(text, '\n')
	pipeline := golazy.NewPipeline(lines)
	pipeline = pipeline.Pipe(golazy.MapClosure(reverseWordsInLine))
	if twice {
		pipeline = pipeline.Pipe(golazy.MapClosure(reverseWordsInLine))
	}

	var b strings.Builder
	it := pipeline.Iter()
	first := true
	for it.Next() {
		if !first {
			b.WriteString("\n")
		}
		first = false
		b.WriteString(it.Value())
	}
	return b.String()
}

// LengthStats reports the mean and median word length across text, plus
// the longest word encountered, using golazy's Mean/Median terminals
// over a view of word lengths.
func LengthStats(text string) (mean, median float64, longest string) {
	ws := wordsOf(text)
	lengths := golazy.Map[string, int](golazy.FromSlice(ws), func(w string) int { return len([]rune(w)) })

	mean, _ = golazy.Mean[int](lengths)
	median, _ = golazy.Median[int](lengths)

	for _, w := range ws {
		if len([]rune(w)) > len([]rune(longest)) {
			longest = w
		}
	}
	return mean, median, longest
}

func wordsOf(text string) []string {
	fields := golazytext.SplitString(text, ' ', '\n', '\t', '\r')
	out := make([]string, 0)
	it := fields.Iter()
	for it.Next() {
		w := strings.TrimFunc(it.Value(), func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

type caseKind int

const (
	caseOther caseKind = iota
	caseUpper
	caseLower
)

// reverseWordsInLine applies a word-wise reversal on a single line of
// UTF-8 text while preserving punctuation, whitespace and the original
// casing pattern, as the teacher's reverse-words example did.
func reverseWordsInLine(line string) string {
	runes := []rune(line)
	n := len(runes)

	isWordRune := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}

	reverseSegment := func(start, end int) {
		length := end - start
		if length <= 1 {
			return
		}
		letters := make([]rune, length)
		cases := make([]caseKind, length)
		for i := 0; i < length; i++ {
			r := runes[start+i]
			letters[i] = r
			switch {
			case unicode.IsUpper(r):
				cases[i] = caseUpper
			case unicode.IsLower(r):
				cases[i] = caseLower
			default:
				cases[i] = caseOther
			}
		}
		for i := 0; i < length/2; i++ {
			j := length - 1 - i
			letters[i], letters[j] = letters[j], letters[i]
		}
		for i := 0; i < length; i++ {
			r := letters[i]
			switch cases[i] {
			case caseUpper:
				r = unicode.ToUpper(r)
			case caseLower:
				r = unicode.ToLower(r)
			}
			runes[start+i] = r
		}
	}

	wordStart := -1
	for i := 0; i <= n; i++ {
		if i < n && isWordRune(runes[i]) {
			if wordStart == -1 {
				wordStart = i
			}
		} else if wordStart != -1 {
			reverseSegment(wordStart, i)
			wordStart = -1
		}
	}
	return string(runes)
}
