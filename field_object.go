package reshape

// ObjectField holds a schema-less key/value structure or any record.
type ObjectField struct {
	*Base
}

var _ Field = (*ObjectField)(nil)

// Object returns a field holding a map[string]any or a record.
func Object(opts ...FieldOption) *ObjectField {
	return &ObjectField{Base: NewBase(opts...)}
}

func (f *ObjectField) Validate(v any) error {
	if err := f.Base.Validate(v); err != nil {
		return err
	}
	if IsNil(v) {
		return nil
	}
	switch t := v.(type) {
	case map[string]any:
		return nil
	case Validator:
		if err := t.Validate(); err != nil {
			return rebase(err, f.path())
		}
		return nil
	}
	return invalidAt(f.path(), CodeInvalidType, v, map[string]string{"expected": "object"})
}

// Serialize flattens the value into a map. A nil value becomes an empty map
// and, with implicitNulls, so does a map whose values are all nullish.
func (f *ObjectField) Serialize(v any, implicitNulls bool) any {
	return collapse(serializeValue(v, implicitNulls), implicitNulls)
}

func collapse(v any, implicitNulls bool) any {
	if IsNil(v) {
		return map[string]any{}
	}
	if m, ok := v.(map[string]any); ok && implicitNulls && allNullish(m) {
		return map[string]any{}
	}
	return v
}
