// Package codec moves records between wire formats and the map values
// accepted by Schema.New and produced by Serialize.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// ErrNotObject is returned when a document's top level is not an object.
var ErrNotObject = errors.New("codec: top-level value is not an object")

// serializer matches reshape records without importing the root package.
type serializer interface {
	Serialize(implicitNulls bool) map[string]any
}

// DecodeJSON decodes a JSON object into construction input. Integral numbers
// become int64, other numbers float64.
func DecodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}
	m, ok := normalizeJSON(v).(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return m, nil
}

func normalizeJSON(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeJSON(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalizeJSON(t[i])
		}
		return t
	default:
		return v
	}
}

// EncodeJSON renders v as JSON. Records are serialized first with the given
// implicitNulls flag. Object keys are sorted.
func EncodeJSON(v any, implicitNulls bool) ([]byte, error) {
	if s, ok := v.(serializer); ok {
		v = s.Serialize(implicitNulls)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}
	return b, nil
}
