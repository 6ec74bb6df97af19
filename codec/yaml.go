package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML mapping into construction input. Nested
// mappings are normalized to map[string]any; non-string keys are dropped.
func DecodeYAML(data []byte) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: %w", err)
	}
	m := yamlAnyToStringMap(v)
	if m == nil {
		return nil, ErrNotObject
	}
	return m, nil
}

// EncodeYAML renders v as YAML. Records are serialized first with the given
// implicitNulls flag.
func EncodeYAML(v any, implicitNulls bool) ([]byte, error) {
	if s, ok := v.(serializer); ok {
		v = s.Serialize(implicitNulls)
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	return b, nil
}

func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
