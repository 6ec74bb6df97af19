package reshape

import (
	"fmt"
	"sort"
)

// Generic is a schema-less record used when a mapping declares no schema.
// Attributes keep insertion order; reads of unknown attributes yield nil.
type Generic struct {
	keys   []string
	values map[string]any
}

// NewGeneric returns a record holding kv (keys sorted) followed by pairs
// (name1, value1, ...) in argument order.
func NewGeneric(kv map[string]any, pairs ...any) *Generic {
	g := &Generic{values: make(map[string]any, len(kv)+len(pairs)/2)}
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		g.put(k, kv[k])
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		g.put(fmt.Sprint(pairs[i]), pairs[i+1])
	}
	return g
}

func (g *Generic) put(k string, v any) {
	if _, ok := g.values[k]; !ok {
		g.keys = append(g.keys, k)
	}
	g.values[k] = v
}

// Keys returns the attribute names in insertion order.
func (g *Generic) Keys() []string { return append([]string(nil), g.keys...) }

// Map returns a shallow copy of the attributes.
func (g *Generic) Map() map[string]any {
	out := make(map[string]any, len(g.values))
	for k, v := range g.values {
		out[k] = v
	}
	return out
}

func (g *Generic) Lookup(name string) (any, bool) {
	v, ok := g.values[name]
	return v, ok
}

func (g *Generic) Get(name string) any { return g.values[name] }

// Set stores an attribute; it never fails.
func (g *Generic) Set(name string, v any) error {
	g.put(name, v)
	return nil
}

// Validate always succeeds.
func (g *Generic) Validate() error { return nil }

func (g *Generic) IsEmpty() bool {
	if g == nil {
		return true
	}
	for _, v := range g.values {
		if !Nullish(v, true) {
			return false
		}
	}
	return true
}

func (g *Generic) Serialize(implicitNulls bool) map[string]any {
	out := make(map[string]any, len(g.values))
	for _, k := range g.keys {
		v := serializeValue(g.values[k], implicitNulls)
		if implicitNulls && Nullish(v, true) {
			continue
		}
		out[k] = v
	}
	return out
}

// Raw returns a copy with nested records unwrapped to their raw snapshots.
func (g *Generic) Raw() *Generic {
	c := &Generic{values: make(map[string]any, len(g.values))}
	for _, k := range g.keys {
		c.put(k, unwrapRaw(g.values[k]))
	}
	return c
}

func (g *Generic) String() string {
	return fmt.Sprintf("Generic%v", g.Serialize(false))
}
