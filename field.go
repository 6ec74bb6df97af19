package reshape

// Field describes one named slot of a Schema.
//
// Validate and Serialize receive the stored value of an instance. Assign is
// applied on every write (construction and Set) and may convert raw input
// into a richer form, for example a nested *Instance.
type Field interface {
	Name() string
	IsRequired() bool
	// Default returns the value served for an absent slot. Factory defaults
	// are evaluated on every call.
	Default() any
	Validate(v any) error
	Serialize(v any, implicitNulls bool) any
	Assign(v any) any

	base() *Base
}

// Base carries the attributes shared by every field type. Custom field types
// embed *Base to satisfy Field.
type Base struct {
	name     string
	required bool
	dflt     any
	dfltFn   func() any
}

// FieldOption configures a field at declaration time.
type FieldOption func(*Base)

// Optional marks the field as not required.
func Optional() FieldOption { return func(b *Base) { b.required = false } }

// Required marks the field as required. Fields are required unless told
// otherwise.
func Required() FieldOption { return func(b *Base) { b.required = true } }

// Default sets a fixed default value. A func() any is treated as a factory,
// see DefaultFunc.
func Default(v any) FieldOption {
	if fn, ok := v.(func() any); ok {
		return DefaultFunc(fn)
	}
	return func(b *Base) { b.dflt, b.dfltFn = v, nil }
}

// DefaultFunc sets a factory evaluated fresh each time an absent value is read,
// so instances never share one mutable default.
func DefaultFunc(fn func() any) FieldOption {
	return func(b *Base) { b.dflt, b.dfltFn = nil, fn }
}

// NewBase returns a Base with the given options applied.
func NewBase(opts ...FieldOption) *Base {
	b := &Base{required: true}
	for _, o := range opts {
		if o != nil {
			o(b)
		}
	}
	return b
}

func (b *Base) base() *Base { return b }

// Name returns the external name the field was registered under.
func (b *Base) Name() string {
	if b.name == "" {
		return "unnamed"
	}
	return b.name
}

func (b *Base) IsRequired() bool { return b.required }

func (b *Base) Default() any {
	if b.dfltFn != nil {
		return b.dfltFn()
	}
	return b.dflt
}

// Validate fails when the field is required and v is nil.
func (b *Base) Validate(v any) error {
	if b.required && IsNil(v) {
		return invalidAt(b.path(), CodeRequired, v, nil)
	}
	return nil
}

func (b *Base) Serialize(v any, _ bool) any { return v }

func (b *Base) Assign(v any) any { return v }

// path is the pointer used for errors reported by this field.
func (b *Base) path() string {
	if b.name == "" {
		return "/"
	}
	return pointerField(b.name)
}

// bind assigns name to the field exactly once.
func bind(f Field, name string) error {
	b := f.base()
	if b.name != "" && b.name != name {
		return ErrFieldRebound
	}
	b.name = name
	return nil
}

