package reshape

import (
	"fmt"
	"sort"
)

// Instance is one record of a Schema. It is not safe for concurrent
// mutation.
type Instance struct {
	schema *Schema
	values map[string]any
	raw    map[string]any
}

// Schema returns the schema the instance was constructed from.
func (in *Instance) Schema() *Schema { return in.schema }

// Lookup returns the value of a declared field. An absent value is replaced
// by the field default, which is stored. ok is false for undeclared names.
func (in *Instance) Lookup(name string) (any, bool) {
	name = Unescape(name)
	f, ok := in.schema.fields.get(name)
	if !ok {
		return nil, false
	}
	v := in.values[name]
	if IsNil(v) {
		v = f.Default()
		in.values[name] = v
	}
	return v, true
}

// Get returns the value of a declared field, or nil.
func (in *Instance) Get(name string) any {
	v, _ := in.Lookup(name)
	return v
}

// Set assigns a declared field through its assign hook.
func (in *Instance) Set(name string, v any) error {
	name = Unescape(name)
	f, ok := in.schema.fields.get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	in.values[name] = f.Assign(v)
	return nil
}

// Serialize represents the record as a map in field declaration order. With
// implicitNulls, keys whose value is nullish are omitted.
func (in *Instance) Serialize(implicitNulls bool) map[string]any {
	out := make(map[string]any, in.schema.fields.len())
	for _, name := range in.schema.fields.names {
		f, _ := in.schema.fields.get(name)
		v := in.Get(name)
		if s, ok := v.(Serializable); ok && !IsNil(v) {
			v = s.Serialize(implicitNulls)
		}
		v = f.Serialize(v, implicitNulls)
		if implicitNulls && Nullish(v, true) {
			continue
		}
		out[name] = v
	}
	return out
}

// Validate checks every field and returns the first failure.
func (in *Instance) Validate() error {
	for _, name := range in.schema.fields.names {
		f, _ := in.schema.fields.get(name)
		if err := f.Validate(in.Get(name)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll checks every field and collects all failures.
func (in *Instance) ValidateAll() Errors {
	var errs Errors
	for _, name := range in.schema.fields.names {
		f, _ := in.schema.fields.get(name)
		err := f.Validate(in.Get(name))
		if err == nil {
			continue
		}
		if es, ok := AsErrors(err); ok {
			errs = AppendErrors(errs, es...)
			continue
		}
		errs = AppendErrors(errs, &Error{Kind: KindInvalid, Code: CodeInvalidType, Path: pointerField(name), Message: err.Error(), Cause: err})
	}
	return errs
}

// IsEmpty reports whether every stored value is nullish. Defaults count only
// once a read has stored them, so an instance whose fields all have unread
// defaults is empty until the first Get.
func (in *Instance) IsEmpty() bool {
	if in == nil {
		return true
	}
	for _, v := range in.values {
		if !Nullish(v, true) {
			return false
		}
	}
	return true
}

// Raw returns the original constructor input overlaid with the current value
// of every declared field. Nested instances are unwrapped to their own raw
// snapshots.
func (in *Instance) Raw() *Generic {
	keys := make([]string, 0, len(in.raw))
	for k := range in.raw {
		if _, declared := in.schema.fields.get(Unescape(k)); declared {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	g := &Generic{values: map[string]any{}}
	for _, k := range keys {
		g.put(k, unwrapRaw(in.raw[k]))
	}
	for _, name := range in.schema.fields.names {
		g.put(name, unwrapRaw(in.Get(name)))
	}
	return g
}

func unwrapRaw(v any) any {
	if r, ok := v.(RawSnapshotter); ok && !IsNil(v) {
		return r.Raw()
	}
	if items, ok := v.([]any); ok {
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = unwrapRaw(it)
		}
		return out
	}
	return v
}

func (in *Instance) String() string {
	return fmt.Sprintf("%s%v", in.schema.name, in.Serialize(false))
}
