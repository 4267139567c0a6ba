// Package identity derives comparable lookup keys for arbitrary option values.
//
// Option values handed to a selection widget may be anything the application
// likes, including slices and maps that Go refuses to use as map keys. Of
// converts every value into a Key that is safe to compare with == and to use
// in a map, so option tables can do reverse lookups without caring about the
// shape of the values they hold.
package identity

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/atomicstack/popup-select/internal/logging/events"
)

// Key is a comparable surrogate for an option value. Two values are the same
// option iff their keys are equal.
type Key struct {
	v any
}

// Identifier lets a value supply its own identity. The returned value is
// converted with Of, so it may itself be composite.
type Identifier interface {
	IdentityKey() any
}

// tuple is the frozen form of an ordered collection.
type tuple string

// fallback is the key of a value that could not be converted.
type fallback string

// Of returns the identity key for value.
func Of(value any) Key {
	return Key{v: convert(value, 0)}
}

// Equal reports whether a and b identify the same option.
func Equal(a, b any) bool {
	return Of(a) == Of(b)
}

// String renders the key for diagnostics.
func (k Key) String() string {
	switch v := k.v.(type) {
	case tuple:
		return string(v)
	case fallback:
		return string(v)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

const maxNesting = 64

func convert(value any, depth int) any {
	if value == nil {
		return nil
	}
	if depth > maxNesting {
		return fallbackOf(value)
	}
	if id, ok := value.(Identifier); ok {
		return convert(id.IdentityKey(), depth+1)
	}
	rv := reflect.ValueOf(value)
	if comparable(rv, 0) {
		return value
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = encode(convert(rv.Index(i).Interface(), depth+1))
		}
		return tuple("(" + strings.Join(parts, ",") + ")")
	case reflect.Map:
		pairs := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := encode(convert(iter.Key().Interface(), depth+1))
			v := encode(convert(iter.Value().Interface(), depth+1))
			pairs = append(pairs, "("+k+","+v+")")
		}
		sort.Strings(pairs)
		return tuple("{" + strings.Join(pairs, ",") + "}")
	case reflect.Struct:
		// A struct with an uncomparable field: freeze field by field.
		parts := make([]string, 0, rv.NumField())
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if !t.Field(i).IsExported() {
				return fallbackOf(value)
			}
			parts = append(parts, t.Field(i).Name+":"+encode(convert(rv.Field(i).Interface(), depth+1)))
		}
		return tuple(t.String() + "{" + strings.Join(parts, ",") + "}")
	}
	return fallbackOf(value)
}

// comparable reports whether == on the value is defined and will not panic.
// Interface payloads are checked because a comparable static type can still
// hold an uncomparable dynamic value.
func comparable(rv reflect.Value, depth int) bool {
	if !rv.IsValid() {
		return true
	}
	if depth > maxNesting {
		return false
	}
	switch rv.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return false
	case reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return comparable(rv.Elem(), depth+1)
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !comparable(rv.Index(i), depth+1) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if !comparable(rv.Field(i), depth+1) {
				return false
			}
		}
		return true
	}
	return rv.Type().Comparable()
}

func encode(v any) string {
	switch t := v.(type) {
	case tuple:
		return string(t)
	case fallback:
		return "fallback(" + fmt.Sprintf("%q", string(t)) + ")"
	}
	return fmt.Sprintf("%T:%#v", v, v)
}

func fallbackOf(value any) any {
	repr := fmt.Sprint(value)
	events.Identity.Fallback(fmt.Sprintf("%T", value), repr)
	return fallback(repr)
}
