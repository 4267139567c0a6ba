// Package options holds the option set backing a selection widget and the
// table that maps display labels to application values.
package options

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrInvalidOptions reports an option set that is neither a sequence nor a
// label mapping.
var ErrInvalidOptions = errors.New("options must be a sequence or a label mapping")

// Kind tags the two accepted option shapes.
type Kind int

const (
	KindSequence Kind = iota
	KindMapping
)

func (k Kind) String() string {
	if k == KindMapping {
		return "mapping"
	}
	return "sequence"
}

// Pair is one label/value entry of a mapping.
type Pair struct {
	Label string
	Value any
}

// Options is either an ordered sequence of values, labelled by their string
// form, or an ordered mapping from label to value. The zero value is an empty
// sequence.
type Options struct {
	kind   Kind
	values []any
	pairs  []Pair
}

// Sequence builds options whose labels are the string form of each value.
// Values whose string forms collide shadow each other.
func Sequence(values ...any) Options {
	return Options{kind: KindSequence, values: append([]any(nil), values...)}
}

// Strings builds a sequence of plain labels.
func Strings(labels ...string) Options {
	values := make([]any, len(labels))
	for i, l := range labels {
		values[i] = l
	}
	return Options{kind: KindSequence, values: values}
}

// Mapping builds options from ordered label/value pairs. A repeated label
// keeps its first position and takes the last value.
func Mapping(pairs ...Pair) Options {
	out := make([]Pair, 0, len(pairs))
	index := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if i, ok := index[p.Label]; ok {
			out[i].Value = p.Value
			continue
		}
		index[p.Label] = len(out)
		out = append(out, p)
	}
	return Options{kind: KindMapping, pairs: out}
}

// FromMap builds a mapping from a Go map. Go maps are unordered, so labels are
// sorted to keep the result deterministic.
func FromMap(m map[string]any) Options {
	labels := make([]string, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	pairs := make([]Pair, len(labels))
	for i, l := range labels {
		pairs[i] = Pair{Label: l, Value: m[l]}
	}
	return Mapping(pairs...)
}

// Parse accepts any of the supported option shapes: Options, []Pair, a
// map with string keys, or any slice or array.
func Parse(v any) (Options, error) {
	switch t := v.(type) {
	case nil:
		return Options{}, nil
	case Options:
		return t, nil
	case *Options:
		if t == nil {
			return Options{}, nil
		}
		return *t, nil
	case []Pair:
		return Mapping(t...), nil
	case []string:
		return Strings(t...), nil
	case []any:
		return Sequence(t...), nil
	case map[string]any:
		return FromMap(t), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		return Sequence(values...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromMap(m), nil
	}
	return Options{}, fmt.Errorf("%w: got %T", ErrInvalidOptions, v)
}

// Kind reports the shape of the options.
func (o Options) Kind() Kind { return o.kind }

// Len returns the number of entries.
func (o Options) Len() int {
	if o.kind == KindMapping {
		return len(o.pairs)
	}
	return len(o.values)
}

// Pairs returns the entries as label/value pairs in order.
func (o Options) Pairs() []Pair {
	if o.kind == KindMapping {
		return append([]Pair(nil), o.pairs...)
	}
	pairs := make([]Pair, len(o.values))
	for i, v := range o.values {
		pairs[i] = Pair{Label: Label(v), Value: v}
	}
	return pairs
}

// IdentityKey lets the identity package compare option sets structurally.
func (o Options) IdentityKey() any {
	type entry struct {
		Label string
		Value any
	}
	entries := make([]any, 0, o.Len()+1)
	entries = append(entries, o.kind.String())
	for _, p := range o.Pairs() {
		entries = append(entries, entry{Label: p.Label, Value: p.Value})
	}
	return entries
}

// Label returns the display label of a sequence value.
func Label(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
