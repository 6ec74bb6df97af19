package reshape

import (
	"reflect"
	"regexp"
	"time"
	"unicode/utf8"
)

// TypeChecker is implemented by fields whose validation is a plain type test.
// Array reuses it to check elements.
type TypeChecker interface {
	Matches(v any) bool
	Expected() string
}

// ScalarField validates that a value is of one Go type family.
type ScalarField struct {
	*Base
	expected string
	match    func(v any) bool
}

var (
	_ Field       = (*ScalarField)(nil)
	_ TypeChecker = (*ScalarField)(nil)
)

// Bool returns a field holding a bool.
func Bool(opts ...FieldOption) *ScalarField {
	return &ScalarField{Base: NewBase(opts...), expected: "bool", match: func(v any) bool {
		_, ok := v.(bool)
		return ok
	}}
}

// Int returns a field holding any signed or unsigned Go integer.
func Int(opts ...FieldOption) *ScalarField {
	return &ScalarField{Base: NewBase(opts...), expected: "int", match: isInteger}
}

// Number returns a field holding a float32 or float64.
func Number(opts ...FieldOption) *ScalarField {
	return &ScalarField{Base: NewBase(opts...), expected: "float", match: func(v any) bool {
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	}}
}

// Datetime returns a field holding a time.Time.
func Datetime(opts ...FieldOption) *ScalarField {
	return &ScalarField{Base: NewBase(opts...), expected: "time.Time", match: func(v any) bool {
		_, ok := v.(time.Time)
		return ok
	}}
}

func isInteger(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func (f *ScalarField) Matches(v any) bool { return f.match(v) }

func (f *ScalarField) Expected() string { return f.expected }

func (f *ScalarField) Validate(v any) error {
	if err := f.Base.Validate(v); err != nil {
		return err
	}
	if v == nil && !f.required {
		return nil
	}
	if !f.match(v) {
		return invalidAt(f.path(), CodeInvalidType, v, map[string]string{"expected": f.expected})
	}
	return nil
}

// UnicodeField holds text. Unless strict, UTF-8 encoded []byte values are
// accepted and decoded.
type UnicodeField struct {
	*Base
	strict bool
}

var (
	_ Field       = (*UnicodeField)(nil)
	_ TypeChecker = (*UnicodeField)(nil)
)

// Unicode returns a text field that decodes UTF-8 byte slices.
func Unicode(opts ...FieldOption) *UnicodeField {
	return &UnicodeField{Base: NewBase(opts...)}
}

// UnicodeStrict returns a text field that accepts only string values.
func UnicodeStrict(opts ...FieldOption) *UnicodeField {
	return &UnicodeField{Base: NewBase(opts...), strict: true}
}

func (f *UnicodeField) Matches(v any) bool {
	_, ok := v.(string)
	return ok
}

func (f *UnicodeField) Expected() string { return "string" }

// coerce returns v as a string, decoding UTF-8 byte slices.
func (f *UnicodeField) coerce(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		if utf8.Valid(t) {
			return string(t), true
		}
	}
	return "", false
}

func (f *UnicodeField) Validate(v any) error {
	if err := f.Base.Validate(v); err != nil {
		return err
	}
	if v == nil && !f.required {
		return nil
	}
	if f.strict {
		if !f.Matches(v) {
			return invalidAt(f.path(), CodeInvalidType, v, map[string]string{"expected": "string"})
		}
		return nil
	}
	if _, ok := f.coerce(v); !ok {
		return invalidAt(f.path(), CodeInvalidType, v, map[string]string{"expected": "string"})
	}
	return nil
}

// Serialize decodes byte slices when possible and passes anything else
// through untouched.
func (f *UnicodeField) Serialize(v any, _ bool) any {
	if s, ok := f.coerce(v); ok {
		return s
	}
	return v
}

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

// IsoDateField holds text beginning with an ISO 8601 date and time
// (YYYY-MM-DDTHH:MM:SS). Fractions and zone suffixes are permitted.
type IsoDateField struct {
	*UnicodeField
}

var _ Field = (*IsoDateField)(nil)

// IsoDate returns a text field validated as an ISO 8601 date string.
func IsoDate(opts ...FieldOption) *IsoDateField {
	return &IsoDateField{UnicodeField: Unicode(opts...)}
}

func (f *IsoDateField) Validate(v any) error {
	if v == nil && !f.required {
		return nil
	}
	if err := f.UnicodeField.Validate(v); err != nil {
		return err
	}
	s, _ := f.coerce(v)
	if !isoDatePrefix.MatchString(s) {
		return invalidAt(f.path(), CodeInvalidFormat, v, map[string]string{"expected": "ISO 8601 date"})
	}
	return nil
}
