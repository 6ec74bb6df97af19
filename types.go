package reshape

// Serializable is implemented by values that render themselves into the
// serialized output shape.
type Serializable interface {
	Serialize(implicitNulls bool) map[string]any
}

// Validator is implemented by values that can check their own contents.
type Validator interface {
	Validate() error
}

// Emptier reports whether a value counts as empty for nullish checks.
type Emptier interface {
	IsEmpty() bool
}

// Getter exposes attribute-style lookup. ok is false when the name is unknown.
type Getter interface {
	Lookup(name string) (v any, ok bool)
}

// RawSnapshotter returns the untransformed view of a record.
type RawSnapshotter interface {
	Raw() *Generic
}

// Record is the common surface of *Instance and *Generic, and the result of
// Mapping.Apply.
type Record interface {
	Serializable
	Validator
	Emptier
	Getter
	RawSnapshotter
	Get(name string) any
	Set(name string, v any) error
}

// Node is a transformation evaluated against a source value. Nodes are
// immutable: evaluating the same node twice against the same source yields the
// same result and does not modify the source.
type Node interface {
	Eval(src any) (any, error)
}

// NodeFunc adapts a plain function to Node.
type NodeFunc func(src any) (any, error)

func (f NodeFunc) Eval(src any) (any, error) { return f(src) }

var (
	_ Record = (*Instance)(nil)
	_ Record = (*Generic)(nil)
)
