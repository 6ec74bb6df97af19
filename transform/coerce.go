package transform

import (
	"github.com/reoring/reshape"
	"github.com/reoring/reshape/internal/coerce"
)

// CoerceNode converts its evaluated argument to a primitive type.
type CoerceNode struct {
	arg      any
	required bool
	nullLike func(v any) bool
	conv     func(v any) (any, error)
}

func isNil(v any) bool { return reshape.IsNil(v) }

func isNilOrEmptyString(v any) bool {
	if s, ok := v.(string); ok {
		return s == ""
	}
	return reshape.IsNil(v)
}

func (c *CoerceNode) Eval(src any) (any, error) {
	v, err := eval(c.arg, src)
	if err != nil {
		return nil, err
	}
	if !c.required && c.nullLike(v) {
		return v, nil
	}
	return c.conv(v)
}

func toInt(v any) (any, error) { return coerce.Int(v) }

func toFloat(v any) (any, error) { return coerce.Float(v) }

func toString(v any) (any, error) { return coerce.String(v) }

func toBool(v any) (any, error) { return coerce.Bool(v) }

// Int converts arg to an int; nil passes through.
func Int(arg any) reshape.Node { return &CoerceNode{arg: arg, nullLike: isNil, conv: toInt} }

// IntRequired converts arg to an int; nil is a conversion error.
func IntRequired(arg any) reshape.Node {
	return &CoerceNode{arg: arg, required: true, nullLike: isNil, conv: toInt}
}

// Num converts arg to a float64; nil passes through.
func Num(arg any) reshape.Node { return &CoerceNode{arg: arg, nullLike: isNil, conv: toFloat} }

// NumRequired converts arg to a float64; nil is a conversion error.
func NumRequired(arg any) reshape.Node {
	return &CoerceNode{arg: arg, required: true, nullLike: isNil, conv: toFloat}
}

// Str converts arg to a string; nil and "" pass through.
func Str(arg any) reshape.Node { return &CoerceNode{arg: arg, nullLike: isNilOrEmptyString, conv: toString} }

// StrRequired converts arg to a string; nil is a conversion error.
func StrRequired(arg any) reshape.Node {
	return &CoerceNode{arg: arg, required: true, nullLike: isNilOrEmptyString, conv: toString}
}

// Bool converts arg to a bool; nil passes through.
func Bool(arg any) reshape.Node { return &CoerceNode{arg: arg, nullLike: isNil, conv: toBool} }

// BoolRequired converts arg to a bool; nil is a conversion error.
func BoolRequired(arg any) reshape.Node {
	return &CoerceNode{arg: arg, required: true, nullLike: isNil, conv: toBool}
}
