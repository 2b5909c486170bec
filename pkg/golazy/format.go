package golazy

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatOptions controls how Format and FormatTo render a view as text.
// The zero value uses an empty separator, prefix and suffix. Format uses
// ", " and square brackets instead (see defaultFormatOptions), matching the
// default the source specification documents for its stream-insertion
// operator.
type FormatOptions struct {
	Separator string
	Prefix    string
	Suffix    string
	// ElementFormat, when non-nil, renders each element; otherwise
	// fmt.Sprint is used.
	ElementFormat func(v any) string
}

func defaultFormatOptions() FormatOptions {
	return FormatOptions{Separator: ", ", Prefix: "[", Suffix: "]"}
}

// WithSeparator returns a copy of o with Separator set to sep.
func (o FormatOptions) WithSeparator(sep string) FormatOptions {
	o.Separator = sep
	return o
}

// WithElementFormat returns a copy of o using f to render each element.
func (o FormatOptions) WithElementFormat(f func(v any) string) FormatOptions {
	o.ElementFormat = f
	return o
}

// AsStringer returns an ElementFormat hook calling fmt.Stringer.String,
// for callers who already have a Stringer-shaped render function.
func AsStringer[T fmt.Stringer]() func(v any) string {
	return func(v any) string {
		return v.(T).String()
	}
}

// Format renders v using the default FormatOptions: "[e1, e2, e3]".
func Format[T any](v View[T]) string {
	return FormatTo(v, defaultFormatOptions())
}

// FormatTo renders v using the given options.
func FormatTo[T any](v View[T], opts FormatOptions) string {
	var b strings.Builder
	b.WriteString(opts.Prefix)
	it := v.Iter()
	first := true
	for it.Next() {
		if !first {
			b.WriteString(opts.Separator)
		}
		first = false
		val := it.Value()
		if opts.ElementFormat != nil {
			b.WriteString(opts.ElementFormat(val))
		} else {
			fmt.Fprint(&b, val)
		}
	}
	b.WriteString(opts.Suffix)
	return b.String()
}

// Stream writes v to w using FormatTo's rendering (e.g. to stdout or a
// response body). It builds the whole string with FormatTo first and then
// writes it to w in a single call.
func Stream[T any](w io.Writer, v View[T], opts FormatOptions) error {
	_, err := io.WriteString(w, FormatTo(v, opts))
	return err
}

// JSON renders v as a JSON array, one element per array entry. It
// mirrors the source specification's Carrier-style "value, index, error"
// aggregation idiom by operating purely on the values themselves: no
// side-channel index or error is attached, since a View carries neither.
func JSON[T any](v View[T]) ([]byte, error) {
	items := ToSlice(v)
	return json.Marshal(items)
}

// CSV renders v as CSV text, one record per element as produced by
// toRecord. The trailing record separator convention matches the
// underlying encoding/csv writer: a newline terminates the final record.
func CSV[T any](v View[T], toRecord func(T) []string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	it := v.Iter()
	for it.Next() {
		if err := w.Write(toRecord(it.Value())); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
