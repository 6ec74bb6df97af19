package transform

import (
	"fmt"
	"reflect"
	"strings"
)

// ConcatNode joins text parts.
type ConcatNode struct {
	parts  []any
	strict bool
}

// Concat joins the evaluated parts. Falsy parts (nil, "", 0, false, empty
// collections) are dropped first.
func Concat(parts ...any) *ConcatNode { return &ConcatNode{parts: parts} }

// ConcatStrict joins every evaluated part; any non-string part, nil
// included, is an error.
func ConcatStrict(parts ...any) *ConcatNode { return &ConcatNode{parts: parts, strict: true} }

func (c *ConcatNode) Eval(src any) (any, error) {
	vals, err := evalArgs(c.parts, src)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for i, v := range vals {
		if !c.strict && falsy(v) {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: part %d is %T", ErrNotText, i, v)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func falsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	}
	return false
}
