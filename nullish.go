package reshape

import "reflect"

// Nullish reports whether v counts as absent.
//
// Without implicit nulls only nil (including typed nil pointers, maps and
// slices) is nullish. With implicit nulls, empty maps, slices and arrays are
// nullish too, and values implementing Emptier decide for themselves. false,
// 0 and "" are never nullish.
func Nullish(v any, implicitNulls bool) bool {
	if IsNil(v) {
		return true
	}
	if !implicitNulls {
		return false
	}
	if e, ok := v.(Emptier); ok {
		return e.IsEmpty()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// IsNil reports whether v is nil or a typed nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func allNullish(m map[string]any) bool {
	for _, v := range m {
		if !Nullish(v, true) {
			return false
		}
	}
	return true
}

// AsSlice returns the elements of a slice or array value. Strings and byte
// slices are not sequences.
func AsSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}
