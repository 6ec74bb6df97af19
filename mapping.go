package reshape

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Mapping binds named transformation nodes to an optional source and target
// schema. Mappings are immutable once built and safe for concurrent Apply
// calls.
type Mapping struct {
	name   string
	source *Schema
	target *Schema
	nodes  *registry[Node]
	log    *zap.Logger
}

// MappingBuilder declares the nodes and schemas of a Mapping.
type MappingBuilder struct {
	m    *Mapping
	errs []error
}

// NewMapping starts the declaration of a mapping.
func NewMapping(name string) *MappingBuilder {
	return &MappingBuilder{m: &Mapping{name: name, nodes: newRegistry[Node](), log: zap.NewNop()}}
}

// Extend starts the declaration of a mapping inheriting the nodes, schemas
// and logger of m.
func (m *Mapping) Extend(name string) *MappingBuilder {
	return &MappingBuilder{m: &Mapping{name: name, source: m.source, target: m.target, nodes: m.nodes.clone(), log: m.log}}
}

// Source sets the schema incoming blobs are loaded into.
func (b *MappingBuilder) Source(s *Schema) *MappingBuilder { b.m.source = s; return b }

// Target sets the schema results are constructed into. Without one, Apply
// returns a *Generic.
func (b *MappingBuilder) Target(s *Schema) *MappingBuilder { b.m.target = s; return b }

// Logger sets the logger used for debug output. nil restores the no-op logger.
func (b *MappingBuilder) Logger(l *zap.Logger) *MappingBuilder {
	if l == nil {
		l = zap.NewNop()
	}
	b.m.log = l
	return b
}

// Field declares the node producing the output field name.
func (b *MappingBuilder) Field(name string, n Node) *MappingBuilder {
	ext := Unescape(name)
	switch {
	case ext == "":
		b.errs = append(b.errs, fmt.Errorf("reshape: mapping %s: empty field name", b.m.name))
	case n == nil:
		b.errs = append(b.errs, fmt.Errorf("reshape: mapping %s: nil node for %q", b.m.name, ext))
	default:
		b.m.nodes.put(ext, n)
	}
	return b
}

// Build returns a snapshot of the declared mapping, or the declaration errors
// joined together.
func (b *MappingBuilder) Build() (*Mapping, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	m := *b.m
	m.nodes = b.m.nodes.clone()
	return &m, nil
}

// MustBuild is like Build but panics on error.
func (b *MappingBuilder) MustBuild() *Mapping {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Mapping) Name() string { return m.name }

// SourceSchema returns the declared source schema, or nil.
func (m *Mapping) SourceSchema() *Schema { return m.source }

// TargetSchema returns the declared target schema, or nil.
func (m *Mapping) TargetSchema() *Schema { return m.target }

// FieldNames returns the declared output names in declaration order.
func (m *Mapping) FieldNames() []string { return append([]string(nil), m.nodes.names...) }

// Apply pushes blob through the mapping. The result is an *Instance of the
// target schema, or a *Generic when none is declared. Apply does not
// validate; call Validate on the result for that.
func (m *Mapping) Apply(blob any) (Record, error) {
	src, err := m.load(blob)
	if err != nil {
		return nil, err
	}
	m.log.Debug("apply mapping", zap.String("mapping", m.name), zap.Int("fields", m.nodes.len()))

	result := make(map[string]any, m.nodes.len())
	for _, name := range m.nodes.names {
		n, _ := m.nodes.get(name)
		v, err := n.Eval(src)
		if err != nil {
			m.log.Debug("mapping field failed", zap.String("mapping", m.name), zap.String("field", name), zap.Error(err))
			return nil, fmt.Errorf("reshape: mapping %s: field %s: %w", m.name, name, err)
		}
		result[name] = v
	}
	if m.target != nil {
		return m.target.New(result), nil
	}
	return NewGeneric(result), nil
}

func (m *Mapping) load(blob any) (any, error) {
	if m.source == nil {
		return blob, nil
	}
	if in, ok := blob.(*Instance); ok && in != nil && in.schema.derivesFrom(m.source) {
		return in, nil
	}
	kv, err := toKV(blob)
	if err != nil {
		return nil, fmt.Errorf("reshape: mapping %s: %w", m.name, err)
	}
	return m.source.New(kv), nil
}

// toKV converts construction input into a map.
func toKV(blob any) (map[string]any, error) {
	switch t := blob.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return t, nil
	case *Generic:
		if t == nil {
			return map[string]any{}, nil
		}
		return t.Map(), nil
	case *Instance:
		if t == nil {
			return map[string]any{}, nil
		}
		return t.Raw().Map(), nil
	}
	rv := reflect.ValueOf(blob)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	}
	return nil, invalidAt("/", CodeInvalidType, blob, map[string]string{"expected": "object"})
}
