package validation_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

func TestOf(t *testing.T) {
	t.Parallel()

	type point struct{ X, Y int }

	tests := []struct {
		name string
		in   any
		want validation.Value
	}{
		{"nil", nil, validation.Null()},
		{"string", "abc", validation.String("abc")},
		{"bytes", []byte("abc"), validation.String("abc")},
		{"int", 42, validation.Int(42)},
		{"int8", int8(-3), validation.Int(-3)},
		{"uint32", uint32(7), validation.Int(7)},
		{"huge uint64", uint64(math.MaxUint64), validation.Float(float64(uint64(math.MaxUint64)))},
		{"float32", float32(1.5), validation.Float(1.5)},
		{"float64", 2.25, validation.Float(2.25)},
		{"bool", true, validation.Bool(true)},
		{"json number int", json.Number("12"), validation.Int(12)},
		{"json number float", json.Number("1.5"), validation.Float(1.5)},
		{"stringer", time.Second, validation.String("1s")},
		{"struct", point{1, 2}, validation.String("{1 2}")},
		{"value passthrough", validation.Int(9), validation.Int(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := validation.Of(tt.in)
			assert.True(t, tt.want.Equal(got), "want %#v, got %#v", tt.want, got)
		})
	}
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", validation.Null().String())
	assert.Equal(t, "hi", validation.String("hi").String())
	assert.Equal(t, "-12", validation.Int(-12).String())
	assert.Equal(t, "12", validation.Float(12).String())
	assert.Equal(t, "0.1", validation.Float(0.1).String())
	assert.Equal(t, "1", validation.Bool(true).String())
	assert.Equal(t, "", validation.False().String())
}

func TestValue_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, validation.String("").Len())
	assert.Equal(t, 5, validation.String("hello").Len())
	assert.Equal(t, 3, validation.String("日本語").Len())
	assert.Equal(t, 6, validation.String("привет").Len())
	assert.Equal(t, 4, validation.String("cafe\u0301").Len(), "decomposed accent counts once")
	assert.Equal(t, 3, validation.Int(123).Len())
	assert.Equal(t, 0, validation.Null().Len())
}

func TestValue_Number(t *testing.T) {
	t.Parallel()

	numeric := map[string]validation.Value{
		"int":               validation.Int(12),
		"float":             validation.Float(-1.5),
		"integer string":    validation.String("12"),
		"signed string":     validation.String("+12"),
		"negative string":   validation.String("-0.5"),
		"decimal string":    validation.String("12.50"),
		"leading dot":       validation.String(".5"),
		"exponent":          validation.String("1e3"),
		"padded":            validation.String("  42 "),
		"negative exponent": validation.String("2.5E-3"),
	}
	for name, v := range numeric {
		_, ok := v.Number()
		assert.True(t, ok, name)
	}

	notNumeric := map[string]validation.Value{
		"null":     validation.Null(),
		"bool":     validation.Bool(true),
		"empty":    validation.String(""),
		"word":     validation.String("abc"),
		"hex":      validation.String("0x1A"),
		"mixed":    validation.String("12abc"),
		"dot only": validation.String("."),
		"nan":      validation.Float(math.NaN()),
		"inf":      validation.Float(math.Inf(1)),
		"spaced":   validation.String("1 2"),
	}
	for name, v := range notNumeric {
		_, ok := v.Number()
		assert.False(t, ok, name)
	}

	n, ok := validation.String(" 2.5e1 ").Number()
	require.True(t, ok)
	assert.InDelta(t, 25.0, n, 1e-9)
}

func TestValue_IsInteger(t *testing.T) {
	t.Parallel()

	assert.True(t, validation.Int(12).IsInteger())
	assert.True(t, validation.String("12").IsInteger())
	assert.True(t, validation.String("12.0").IsInteger())
	assert.True(t, validation.String("1e3").IsInteger())
	assert.True(t, validation.Float(4).IsInteger())

	assert.False(t, validation.String("12.5").IsInteger())
	assert.False(t, validation.Float(0.1).IsInteger())
	assert.False(t, validation.String("abc").IsInteger())
	assert.False(t, validation.Bool(true).IsInteger())
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, validation.String("123").Equal(validation.String("123")))
	assert.True(t, validation.Int(1).Equal(validation.Int(1)))
	assert.True(t, validation.Null().Equal(validation.Null()))

	assert.False(t, validation.Int(123).Equal(validation.String("123")))
	assert.False(t, validation.Int(1).Equal(validation.Float(1)))
	assert.False(t, validation.Bool(false).Equal(validation.Null()))
	assert.False(t, validation.String("a").Equal(validation.String("A")))
}

func TestValue_LooseEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, validation.Int(1).LooseEqual(validation.String("1")))
	assert.True(t, validation.String("1e3").LooseEqual(validation.String("1000")))
	assert.True(t, validation.Int(1).LooseEqual(validation.Float(1)))
	assert.True(t, validation.Bool(true).LooseEqual(validation.String("token")))
	assert.True(t, validation.Null().LooseEqual(validation.String("")))
	assert.True(t, validation.String("abc").LooseEqual(validation.String("abc")))

	assert.False(t, validation.String("abc").LooseEqual(validation.String("abd")))
	assert.False(t, validation.Bool(false).LooseEqual(validation.String("token")))
	assert.False(t, validation.Int(2).LooseEqual(validation.String("2.5")))
}

func TestValue_Truthy(t *testing.T) {
	t.Parallel()

	for _, v := range []validation.Value{
		validation.Null(),
		validation.String(""),
		validation.String("0"),
		validation.Int(0),
		validation.Float(0),
		validation.False(),
	} {
		assert.False(t, v.Truthy(), "%#v", v)
	}

	for _, v := range []validation.Value{
		validation.String("a"),
		validation.String("0.0"),
		validation.Int(-1),
		validation.Float(0.5),
		validation.Bool(true),
	} {
		assert.True(t, v.Truthy(), "%#v", v)
	}
}

func TestValue_IsFalse(t *testing.T) {
	t.Parallel()

	assert.True(t, validation.False().IsFalse())
	assert.False(t, validation.Null().IsFalse())
	assert.False(t, validation.String("").IsFalse())
	assert.False(t, validation.Int(0).IsFalse())
	assert.False(t, validation.Bool(true).IsFalse())
}

func TestValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[string]validation.Value{
		"a": validation.String("x"),
		"b": validation.Int(5),
		"c": validation.Float(1.5),
		"d": validation.False(),
		"e": validation.Null(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":5,"c":1.5,"d":false,"e":null}`, string(data))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", validation.Null().Kind().String())
	assert.Equal(t, "string", validation.String("").Kind().String())
	assert.Equal(t, "int", validation.Int(0).Kind().String())
	assert.Equal(t, "float", validation.Float(0).Kind().String())
	assert.Equal(t, "bool", validation.Bool(false).Kind().String())
}
