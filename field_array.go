package reshape

import (
	"fmt"
	"reflect"
)

// ArrayField holds a sequence. The element type may be absent (any items), a
// TypeChecker field such as Int() or Unicode(), a reflect.Kind, or a nested
// schema (*Schema or *SubschemaField).
type ArrayField struct {
	*Base
	schema  *Schema
	checker TypeChecker
}

var _ Field = (*ArrayField)(nil)

// Array returns a sequence field with the given element type.
func Array(elem any, opts ...FieldOption) *ArrayField {
	f := &ArrayField{Base: NewBase(opts...)}
	switch t := elem.(type) {
	case nil:
	case *Schema:
		f.schema = t
	case *SubschemaField:
		f.schema = t.schema
	case TypeChecker:
		f.checker = t
	case reflect.Kind:
		f.checker = kindChecker(t)
	default:
		panic(fmt.Sprintf("reshape: unsupported array element type %T", elem))
	}
	return f
}

type kindChecker reflect.Kind

func (k kindChecker) Matches(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Kind(k)
}

func (k kindChecker) Expected() string { return reflect.Kind(k).String() }

// Assign constructs raw map items into instances of the element schema.
// Other items are kept as they are; this is not validation.
func (f *ArrayField) Assign(v any) any {
	if f.schema == nil {
		return v
	}
	items, ok := AsSlice(v)
	if !ok {
		return v
	}
	out := make([]any, len(items))
	for i, it := range items {
		if m, ok := it.(map[string]any); ok {
			out[i] = f.schema.New(m)
			continue
		}
		out[i] = it
	}
	return out
}

func (f *ArrayField) expected() string {
	switch {
	case f.schema != nil:
		return f.schema.Name()
	case f.checker != nil:
		return f.checker.Expected()
	}
	return "array"
}

func (f *ArrayField) Validate(v any) error {
	if err := f.Base.Validate(v); err != nil {
		return err
	}
	if !f.required && Nullish(v, true) {
		return nil
	}
	items, ok := AsSlice(v)
	if !ok {
		return invalidAt(f.path(), CodeInvalidType, v, map[string]string{"expected": "array"})
	}
	for i, it := range items {
		if err := f.validateItem(i, it); err != nil {
			return err
		}
	}
	return nil
}

func (f *ArrayField) validateItem(i int, it any) error {
	at := pointerIndex(f.path(), i)
	switch {
	case f.schema != nil:
		switch t := it.(type) {
		case *Instance:
			if t == nil || !t.schema.derivesFrom(f.schema) {
				return invalidAt(at, CodeInvalidItem, it, map[string]string{"expected": f.schema.Name()})
			}
			if err := t.Validate(); err != nil {
				return rebase(err, at)
			}
		case map[string]any:
			if err := f.schema.New(t).Validate(); err != nil {
				e := invalidAt(at, CodeInvalidItem, it, map[string]string{"expected": f.schema.Name()})
				e.Cause = err
				return e
			}
		default:
			return invalidAt(at, CodeInvalidItem, it, map[string]string{"expected": f.schema.Name()})
		}
	case f.checker != nil:
		if !f.checker.Matches(it) {
			return invalidAt(at, CodeInvalidItem, it, map[string]string{"expected": f.checker.Expected()})
		}
	}
	return nil
}

// Serialize flattens every item and, with implicitNulls, drops items that are
// nullish after flattening. Values that are not sequences pass through.
func (f *ArrayField) Serialize(v any, implicitNulls bool) any {
	items, ok := AsSlice(v)
	if !ok {
		return v
	}
	return serializeSlice(items, implicitNulls)
}
