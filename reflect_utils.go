package reshape

import (
	"reflect"
	"strings"
)

// ResolveStructKey resolves the external key of a struct field for attribute
// lookups.
// Priority: reshape:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if rt := sf.Tag.Get("reshape"); rt != "" {
		parts := strings.Split(rt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 && jt[:i] != "" {
			return jt[:i]
		}
		if !strings.HasPrefix(jt, ",") {
			return jt
		}
	}
	return sf.Name
}

// Lookup reads one named step from v: a key of a map, an attribute of a
// Getter (Instance, Generic) or an exported field of a struct. ok is false
// when the step does not exist.
func Lookup(v any, name string) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		x, ok := t[name]
		return x, ok
	case Getter:
		if IsNil(t) {
			return nil, false
		}
		return t.Lookup(name)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		x := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !x.IsValid() {
			return nil, false
		}
		return x.Interface(), true
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			if ResolveStructKey(sf) == name {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}
