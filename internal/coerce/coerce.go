// Package coerce converts loosely typed values into Go primitives.
package coerce

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ErrNil is returned when a nil value is coerced.
var ErrNil = errors.New("coerce: nil value")

// Int converts v to an int. Strings must hold a base-10 integer; floats are
// truncated.
func Int(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, ErrNil
	case string:
		return strconv.Atoi(strings.TrimSpace(t))
	case json.Number:
		n, err := t.Int64()
		return int(n), err
	}
	return cast.ToIntE(v)
}

// Float converts v to a float64.
func Float(v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, ErrNil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	}
	return cast.ToFloat64E(v)
}

// String converts v to its textual form. Whole floats keep a ".0" suffix.
func String(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", ErrNil
	case float64:
		return formatFloat(t, 64), nil
	case float32:
		return formatFloat(float64(t), 32), nil
	}
	return cast.ToStringE(v)
}

func formatFloat(f float64, bits int) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, bits)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// emptier matches records that know whether they hold any value.
type emptier interface{ IsEmpty() bool }

// Bool converts v by truthiness: false, zero numbers and empty strings,
// slices, arrays and maps are false. Any other value is true.
func Bool(v any) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, ErrNil
	case bool:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return false, err
		}
		return f != 0, nil
	case emptier:
		return !t.IsEmpty(), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0, nil
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil(), nil
	}
	return true, nil
}
