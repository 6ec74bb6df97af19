package reshape

import "fmt"

// SubschemaField embeds one record of another schema.
type SubschemaField struct {
	*Base
	schema *Schema
}

var _ Field = (*SubschemaField)(nil)

// Subschema returns a field holding an instance of s. Raw maps assigned to the
// field are constructed into instances of s.
func Subschema(s *Schema, opts ...FieldOption) *SubschemaField {
	if s == nil {
		panic("reshape: Subschema requires a schema")
	}
	return &SubschemaField{Base: NewBase(opts...), schema: s}
}

// Schema returns the embedded schema.
func (f *SubschemaField) Schema() *Schema { return f.schema }

func (f *SubschemaField) Assign(v any) any {
	if m, ok := v.(map[string]any); ok {
		return f.schema.New(m)
	}
	return v
}

func (f *SubschemaField) Validate(v any) error {
	if err := f.Base.Validate(v); err != nil {
		return err
	}
	if !f.required && Nullish(v, true) {
		return nil
	}
	var err error
	switch t := v.(type) {
	case Validator:
		err = t.Validate()
	case map[string]any:
		err = f.schema.New(t).Validate()
	default:
		return invalidAt(f.path(), CodeInvalidType, v, map[string]string{"expected": f.schema.Name()})
	}
	if err != nil {
		return rebase(err, f.path())
	}
	return nil
}

// Serialize flattens the nested record. nil becomes an empty map, and with
// implicitNulls so does a record whose remaining values are all nullish.
func (f *SubschemaField) Serialize(v any, implicitNulls bool) any {
	return collapse(serializeValue(v, implicitNulls), implicitNulls)
}

func (f *SubschemaField) String() string {
	return fmt.Sprintf("Subschema(%s)", f.schema.Name())
}
