package renderers

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/xy-planning-network/conneg/renderer"
)

// A JSONPreprocessor transforms a Context before data renderers encode it.
type JSONPreprocessor interface {
	PreprocessJSON(c renderer.Context) any
}

var (
	timeType          = reflect.TypeOf(time.Time{})
	jsonMarshaler     = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshaler     = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	unsimplifiableFmt = "%s at %s"
)

// Simplify reduces v to values every data renderer can encode.
//
// Times become milliseconds since the Unix epoch.
// Maps keyed by strings become map[string]any and slices or arrays become []any,
// either holding simplified values; pointers and interfaces are followed.
// Values implementing json.Marshaler or encoding.TextMarshaler, structs,
// byte slices, and scalars are kept as they are.
//
// Funcs, channels, complex numbers, and maps not keyed by strings are dropped,
// each one described in the returned list.
func Simplify(v any) (any, []string) {
	var dropped []string
	out, _ := simplify(reflect.ValueOf(v), "$", &dropped)
	return out, dropped
}

func simplify(rv reflect.Value, at string, dropped *[]string) (any, bool) {
	if !rv.IsValid() {
		return nil, true
	}

	if rv.Type() == timeType {
		return rv.Interface().(time.Time).UnixMilli(), true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, true
		}
		if rv.Kind() == reflect.Pointer && implementsMarshaler(rv.Type()) && rv.Elem().Type() != timeType {
			return rv.Interface(), true
		}
		return simplify(rv.Elem(), at, dropped)
	}

	if implementsMarshaler(rv.Type()) {
		return rv.Interface(), true
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Struct:
		return rv.Interface(), true

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return nil, true
		}

		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			if v, ok := simplify(iter.Value(), at+"."+k, dropped); ok {
				m[k] = v
			}
		}
		return m, true

	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface(), true
		}
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, true
		}

		s := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if v, ok := simplify(rv.Index(i), fmt.Sprintf("%s[%d]", at, i), dropped); ok {
				s = append(s, v)
			}
		}
		return s, true
	}

	*dropped = append(*dropped, fmt.Sprintf(unsimplifiableFmt, rv.Type(), at))
	return nil, false
}

func implementsMarshaler(t reflect.Type) bool {
	return t.Implements(jsonMarshaler) || t.Implements(textMarshaler)
}
