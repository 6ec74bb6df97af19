package reshape

// registry is an ordered name→value table. Overriding an existing name keeps
// its original position so that serialization order stays reproducible
// across schema extensions.
type registry[V any] struct {
	names  []string
	byName map[string]V
}

func newRegistry[V any]() *registry[V] {
	return &registry[V]{byName: map[string]V{}}
}

func (r *registry[V]) clone() *registry[V] {
	c := &registry[V]{names: append([]string(nil), r.names...), byName: make(map[string]V, len(r.byName))}
	for k, v := range r.byName {
		c.byName[k] = v
	}
	return c
}

func (r *registry[V]) put(name string, v V) {
	if _, ok := r.byName[name]; !ok {
		r.names = append(r.names, name)
	}
	r.byName[name] = v
}

func (r *registry[V]) get(name string) (V, bool) {
	v, ok := r.byName[name]
	return v, ok
}

func (r *registry[V]) len() int { return len(r.names) }
