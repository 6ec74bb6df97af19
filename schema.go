package reshape

import (
	"errors"
	"fmt"
)

// Schema is an immutable, ordered set of named fields describing one record
// shape. Build schemas with NewSchema or Extend.
type Schema struct {
	name   string
	parent *Schema
	fields *registry[Field]
}

// SchemaBuilder declares the fields of a Schema.
type SchemaBuilder struct {
	s    *Schema
	errs []error
}

// NewSchema starts the declaration of a schema.
func NewSchema(name string) *SchemaBuilder {
	return &SchemaBuilder{s: &Schema{name: name, fields: newRegistry[Field]()}}
}

// Extend starts the declaration of a schema inheriting every field of s.
// Fields declared on the builder are appended after the inherited ones, or
// replace an inherited field of the same name in place.
func (s *Schema) Extend(name string) *SchemaBuilder {
	return &SchemaBuilder{s: &Schema{name: name, parent: s, fields: s.fields.clone()}}
}

// Field declares a field. A name starting with EscapePrefix is registered
// under its unescaped form.
func (b *SchemaBuilder) Field(name string, f Field) *SchemaBuilder {
	ext := Unescape(name)
	switch {
	case ext == "":
		b.errs = append(b.errs, fmt.Errorf("reshape: schema %s: empty field name", b.s.name))
		return b
	case f == nil:
		b.errs = append(b.errs, fmt.Errorf("reshape: schema %s: nil field %q", b.s.name, ext))
		return b
	}
	if err := bind(f, ext); err != nil {
		b.errs = append(b.errs, fmt.Errorf("reshape: schema %s: field %q: %w", b.s.name, ext, err))
		return b
	}
	b.s.fields.put(ext, f)
	return b
}

// Build returns a snapshot of the declared schema, or the declaration errors
// joined together. Fields declared on b afterwards do not reach schemas
// already built.
func (b *SchemaBuilder) Build() (*Schema, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return &Schema{name: b.s.name, parent: b.s.parent, fields: b.s.fields.clone()}, nil
}

// MustBuild is like Build but panics on error.
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// FieldNames returns the declared field names in serialization order.
func (s *Schema) FieldNames() []string { return append([]string(nil), s.fields.names...) }

// Field returns the field registered under name (escaped or not).
func (s *Schema) Field(name string) (Field, bool) { return s.fields.get(Unescape(name)) }

// derivesFrom reports whether s is other or extends it.
func (s *Schema) derivesFrom(other *Schema) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// New constructs an instance from data. pairs are additional key/value
// arguments (name1, value1, name2, value2, ...) that take precedence over
// data; a trailing key without a value is ignored. Keys not declared by the
// schema are ignored, though they stay visible through Raw.
func (s *Schema) New(data map[string]any, pairs ...any) *Instance {
	raw := make(map[string]any, len(data)+len(pairs)/2)
	for k, v := range data {
		raw[k] = v
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		raw[fmt.Sprint(pairs[i])] = pairs[i+1]
	}

	in := &Instance{schema: s, values: make(map[string]any, s.fields.len()), raw: raw}
	for _, name := range s.fields.names {
		f, _ := s.fields.get(name)
		if sub, ok := f.(*SubschemaField); ok {
			in.values[name] = sub.schema.New(nil)
		}
	}
	for k, v := range raw {
		name := Unescape(k)
		if f, ok := s.fields.get(name); ok {
			in.values[name] = f.Assign(v)
		}
	}
	return in
}

func (s *Schema) String() string { return "Schema(" + s.name + ")" }
