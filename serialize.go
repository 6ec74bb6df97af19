package reshape

import "reflect"

// serializeValue flattens v into the serialized value space: Serializable
// values are serialized, maps and slices are walked, everything else is
// returned as is.
func serializeValue(v any, implicitNulls bool) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Serializable:
		if IsNil(t) {
			return nil
		}
		return t.Serialize(implicitNulls)
	case map[string]any:
		return serializeMap(t, implicitNulls)
	case []any:
		return serializeSlice(t, implicitNulls)
	case []byte, string:
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items, _ := AsSlice(v)
		return serializeSlice(items, implicitNulls)
	}
	return v
}

func serializeMap(m map[string]any, implicitNulls bool) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		sv := serializeValue(v, implicitNulls)
		if implicitNulls && Nullish(sv, true) {
			continue
		}
		out[k] = sv
	}
	return out
}

func serializeSlice(items []any, implicitNulls bool) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		sv := serializeValue(it, implicitNulls)
		if Nullish(sv, implicitNulls) {
			if implicitNulls {
				continue
			}
		}
		out = append(out, sv)
	}
	return out
}
