package reshape_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/reshape"
)

func TestIntField_Validate(t *testing.T) {
	f := reshape.Int()
	assert.NoError(t, f.Validate(1))
	assert.NoError(t, f.Validate(int64(1)))
	assert.NoError(t, f.Validate(uint8(1)))
	for _, bad := range []any{"wow", 1.0, []any{}, nil, true} {
		assert.ErrorIs(t, f.Validate(bad), reshape.ErrInvalid, "%v", bad)
	}

	assert.NoError(t, reshape.Int(reshape.Optional()).Validate(nil))
}

func TestScalarFields_Validate(t *testing.T) {
	assert.NoError(t, reshape.Bool().Validate(false))
	assert.Error(t, reshape.Bool().Validate(0))
	assert.NoError(t, reshape.Number().Validate(1.5))
	assert.Error(t, reshape.Number().Validate(1))
	assert.NoError(t, reshape.Datetime().Validate(time.Now()))
	assert.Error(t, reshape.Datetime().Validate("2015-10-11T00:00:00"))
}

func TestUnicodeField_Validate(t *testing.T) {
	f := reshape.Unicode()
	assert.NoError(t, f.Validate("wow ☃"))
	assert.NoError(t, f.Validate([]byte("still ok")))
	assert.Error(t, f.Validate([]byte{0xff, 0xfe}))
	assert.Error(t, f.Validate(1.0))
	assert.Error(t, f.Validate(nil))

	f = reshape.Unicode(reshape.Optional())
	assert.NoError(t, f.Validate("wow ☃"))
	assert.NoError(t, f.Validate(nil))
	assert.Error(t, f.Validate(1))

	f = reshape.UnicodeStrict()
	assert.NoError(t, f.Validate("nice snowman ☃"))
	assert.Error(t, f.Validate([]byte("not strict enough")))
}

func TestIsoDateField_Validate(t *testing.T) {
	f := reshape.IsoDate()
	assert.NoError(t, f.Validate("2015-10-11T00:00:00"))
	assert.NoError(t, f.Validate("2015-10-11T00:00:00Z"))
	assert.NoError(t, f.Validate("2015-10-11T00:00:00+00:00"))

	err := f.Validate("not a date string")
	e, ok := reshape.AsError(err)
	if assert.True(t, ok) {
		assert.Equal(t, reshape.CodeInvalidFormat, e.Code)
	}
	assert.Error(t, f.Validate(1))
	assert.Error(t, f.Validate(time.Now()))
	assert.Error(t, f.Validate(nil))
	assert.NoError(t, reshape.IsoDate(reshape.Optional()).Validate(nil))
}

func TestArrayField_Validate(t *testing.T) {
	f := reshape.Array(reflect.Int)
	assert.NoError(t, f.Validate([]any{1, 2, 3}))
	assert.NoError(t, f.Validate([]int{1, 2, 3}))
	assert.Error(t, f.Validate([]any{"a", 1, 1.0}))
	assert.Error(t, f.Validate(nil))
	assert.Error(t, f.Validate(map[int]string{1: "A", 2: "B"}))
	assert.Error(t, f.Validate("hiya"))

	f = reshape.Array(reshape.Int(), reshape.Optional())
	assert.NoError(t, f.Validate([]any{1, 2, 3}))
	assert.NoError(t, f.Validate(nil))
	assert.NoError(t, f.Validate([]any{}))
	assert.Error(t, f.Validate(1))

	some := reshape.NewSchema("SomeSchema").Field("good", reshape.Int()).MustBuild()
	other := reshape.NewSchema("Other").Field("good", reshape.Int()).MustBuild()
	f = reshape.Array(some, reshape.Optional())
	assert.NoError(t, f.Validate([]any{some.New(nil, "good", 1)}))
	assert.NoError(t, f.Validate([]any{map[string]any{"good": 1}}))
	assert.NoError(t, f.Validate(nil))
	assert.Error(t, f.Validate([]any{some.New(nil, "good", "bad")}))
	assert.Error(t, f.Validate([]any{map[string]any{"good": "bad"}}))
	assert.Error(t, f.Validate([]any{map[string]any{"wat": "whatever"}}))
	assert.Error(t, f.Validate([]any{other.New(nil, "good", 1)}), "instance of another schema")
	assert.Error(t, f.Validate([]any{some.New(nil, "good", 1), some.New(nil, "good", "bad")}), "every item is checked")
}

func TestArrayField_ErrorPaths(t *testing.T) {
	some := reshape.NewSchema("SomeSchema").Field("good", reshape.Int()).MustBuild()
	holder := reshape.NewSchema("Holder").Field("items", reshape.Array(some)).MustBuild()

	err := holder.New(map[string]any{"items": []any{
		map[string]any{"good": 1},
		map[string]any{"good": "bad"},
	}}).Validate()
	e, ok := reshape.AsError(err)
	if assert.True(t, ok) {
		assert.Equal(t, "/items/1/good", e.Path)
		assert.Equal(t, reshape.KindInvalid, e.Kind)
	}
}

func TestObjectField_Validate(t *testing.T) {
	f := reshape.Object()
	assert.NoError(t, f.Validate(map[string]any{}))
	assert.NoError(t, f.Validate(map[string]any{"foo": "bar"}))
	assert.Error(t, f.Validate(1))
	assert.Error(t, f.Validate([]any{}))
	assert.Error(t, f.Validate(nil))

	some := reshape.NewSchema("SomeSchema").Field("inner", reshape.Int()).MustBuild()
	assert.NoError(t, f.Validate(some.New(nil, "inner", 1)))
	assert.Error(t, f.Validate(some.New(nil, "inner", "wow")))
	assert.NoError(t, f.Validate(reshape.NewGeneric(nil, "anything", 1)))

	f = reshape.Object(reshape.Optional())
	assert.NoError(t, f.Validate(map[string]any{"foo": "bar"}))
	assert.NoError(t, f.Validate(nil))
}

func TestSubschemaField_Validate(t *testing.T) {
	some := reshape.NewSchema("SomeSchema").Field("inner", reshape.Int()).MustBuild()

	f := reshape.Subschema(some)
	assert.NoError(t, f.Validate(some.New(nil, "inner", 1)))
	assert.NoError(t, f.Validate(map[string]any{"inner": 1}))
	assert.Error(t, f.Validate(some.New(nil, "inner", "wow")))
	assert.Error(t, f.Validate(some.New(nil, "inner", nil)))
	assert.Error(t, f.Validate(nil))
	assert.Error(t, f.Validate(some.New(nil)))
	assert.Error(t, f.Validate(map[string]any{}))
	assert.Error(t, f.Validate("nope"))

	f = reshape.Subschema(some, reshape.Optional())
	assert.NoError(t, f.Validate(some.New(nil, "inner", 1)))
	assert.NoError(t, f.Validate(nil))
	assert.NoError(t, f.Validate(map[string]any{}))
	assert.NoError(t, f.Validate(some.New(nil)))
	assert.NoError(t, f.Validate(some.New(nil, "inner", nil)))
	assert.Error(t, f.Validate(some.New(nil, "inner", "wow")))
}

func TestSubschema_RequiredWithinOptional(t *testing.T) {
	mostIn := reshape.NewSchema("MostIn").Field("foo", reshape.Int()).MustBuild()
	inner := reshape.NewSchema("Inner").Field("maybe", reshape.Subschema(mostIn, reshape.Required())).MustBuild()
	outer := reshape.NewSchema("Outer").Field("maybe", reshape.Subschema(inner, reshape.Optional())).MustBuild()

	full := outer.New(nil, "maybe", inner.New(nil, "maybe", mostIn.New(nil, "foo", 1)))
	assert.NoError(t, full.Validate())

	oops := outer.New(nil, "maybe", inner.New(nil, "maybe", mostIn.New(nil, "foo", "A")))
	err := oops.Validate()
	assert.ErrorIs(t, err, reshape.ErrInvalid)
	e, _ := reshape.AsError(err)
	assert.Equal(t, "/maybe/maybe/foo", e.Path)

	assert.NoError(t, outer.New(nil, "maybe", nil).Validate())
	assert.NoError(t, outer.New(nil, "maybe", inner.New(nil, "maybe", nil)).Validate())
	assert.NoError(t, outer.New(nil, "maybe", inner.New(nil, "maybe", mostIn.New(nil, "foo", nil))).Validate())
}

func TestArrayField_Serialize(t *testing.T) {
	f := reshape.Array(reflect.Int)
	assert.Equal(t, []any{1, 2, 3}, f.Serialize([]any{1, 2, 3}, true))
	assert.Equal(t, []any{1, 2, 3}, f.Serialize([]int{1, 2, 3}, true))
	assert.Nil(t, f.Serialize(nil, true))
	assert.Equal(t, []any{}, f.Serialize([]any{}, true))
	assert.Equal(t, "wow", f.Serialize("wow", true))

	some := reshape.NewSchema("SomeSchema").Field("wat", reshape.Int()).MustBuild()
	f = reshape.Array(reshape.Subschema(some))
	src := []any{some.New(nil, "wat", 1), some.New(nil, "wat", 2)}
	assert.Equal(t, []any{map[string]any{"wat": 1}, map[string]any{"wat": 2}}, f.Serialize(src, true))

	src = []any{some.New(nil), some.New(nil)}
	assert.Equal(t, []any{}, f.Serialize(src, true))
	assert.Equal(t, []any{map[string]any{"wat": nil}, map[string]any{"wat": nil}}, f.Serialize(src, false))
}

func TestObjectField_Serialize(t *testing.T) {
	f := reshape.Object()
	assert.Equal(t, map[string]any{}, f.Serialize(nil, true))
	assert.Equal(t, []any{}, f.Serialize([]any{}, true))
	assert.Equal(t, "wow", f.Serialize("wow", true))
	assert.Equal(t, map[string]any{"wow": "cool"}, f.Serialize(map[string]any{"wow": "cool"}, true))

	some := reshape.NewSchema("SomeSchema").Field("great", reshape.Array(reflect.Int)).MustBuild()
	assert.Equal(t, map[string]any{"great": []any{1, 2, 3}}, f.Serialize(some.New(nil, "great", []any{1, 2, 3}), true))

	src := map[string]any{"implicit": nil}
	assert.Equal(t, map[string]any{}, f.Serialize(src, true))
	assert.Equal(t, src, f.Serialize(src, false))
}

func TestSubschemaField_Serialize(t *testing.T) {
	some := reshape.NewSchema("SomeSchema").Field("great", reshape.Array(reflect.Int, reshape.Optional())).MustBuild()

	f := reshape.Subschema(some)
	assert.Equal(t, map[string]any{}, f.Serialize(nil, true))
	assert.Equal(t, []any{}, f.Serialize([]any{}, true))
	assert.Equal(t, "wow", f.Serialize("wow", true))
	assert.Equal(t, map[string]any{"great": []any{1, 2, 3}}, f.Serialize(some.New(nil, "great", []any{1, 2, 3}), true))
	assert.Equal(t, map[string]any{}, f.Serialize(some.New(nil, "great", nil), true))
	assert.Equal(t, map[string]any{"great": nil}, f.Serialize(some.New(nil, "great", nil), false))
}

func TestUnicodeField_Serialize(t *testing.T) {
	f := reshape.Unicode()
	assert.Equal(t, "wow ☃", f.Serialize("wow ☃", true))
	assert.Equal(t, "still ok", f.Serialize([]byte("still ok"), true))
	assert.Equal(t, 1.0, f.Serialize(1.0, true), "serialization is not validation")
	assert.Nil(t, f.Serialize(nil, true))

	assert.Equal(t, "not strict enough", reshape.UnicodeStrict().Serialize([]byte("not strict enough"), true))
}

func TestField_NameAndDefaults(t *testing.T) {
	f := reshape.Int(reshape.Default(7))
	assert.Equal(t, "unnamed", f.Name())
	assert.True(t, f.IsRequired())
	assert.Equal(t, 7, f.Default())

	reshape.NewSchema("Named").Field("seven", f).MustBuild()
	assert.Equal(t, "seven", f.Name())

	calls := 0
	g := reshape.Object(reshape.Optional(), reshape.Default(func() any {
		calls++
		return map[string]any{}
	}))
	g.Default()
	g.Default()
	assert.Equal(t, 2, calls)
	assert.False(t, g.IsRequired())
}
