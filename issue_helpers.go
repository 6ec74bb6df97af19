package reshape

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/reoring/reshape/i18n"
)

// valueDumper renders offending values into messages deterministically.
var valueDumper = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func renderValue(v any) string { return valueDumper.Sprintf("%v", v) }

// invalidAt creates an Invalid error at path with a translated message.
// data provides extra template parameters; "value" is filled from v.
func invalidAt(path, code string, v any, data map[string]string) *Error {
	params := map[string]string{"value": renderValue(v)}
	for k, s := range data {
		params[k] = s
	}
	return &Error{Kind: KindInvalid, Code: code, Path: path, Message: i18n.T(code, params), Value: v}
}

// NewInvalid creates an Invalid error for custom fields.
func NewInvalid(path, code string, v any, expected string) *Error {
	return invalidAt(path, code, v, map[string]string{"expected": expected})
}

// NewMissing creates a Missing error for the given lookup path.
func NewMissing(path string) *Error {
	return &Error{Kind: KindMissing, Code: CodeMissing, Path: path, Message: i18n.T(CodeMissing, map[string]string{"key": path})}
}
