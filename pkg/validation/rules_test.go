package validation_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

func TestValidator_Required(t *testing.T) {
	t.Parallel()

	v := newValidator()
	assert.Equal(t, validation.Failure(validation.MsgRequired), v.Set("").Required("").Run())
	assert.Equal(t, validation.Failure("custom"), v.Set(nil).Required("custom").Run())
	assert.Equal(t, validation.Failure("x"), v.Set(false).Required("x").Run())

	assert.False(t, v.Set(" ").Required("").Run().Invalid)
	assert.False(t, v.Set(0).Required("").Run().Invalid)
	assert.False(t, v.Set("é").Required("").Run().Invalid)
}

func TestValidator_NumericAndInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        any
		numeric   bool
		isInteger bool
	}{
		{"12", true, true},
		{12, true, true},
		{"12.0", true, true},
		{"-7", true, true},
		{"1e3", true, true},
		{"12.5", true, false},
		{12.5, true, false},
		{".5", true, false},
		{"abc", false, false},
		{"", false, false},
		{"12abc", false, false},
		{true, false, false},
		{nil, false, false},
	}

	v := newValidator()
	for _, tt := range tests {
		assert.Equal(t, !tt.numeric, v.Set(tt.in).Numeric("").Run().Invalid, "numeric(%#v)", tt.in)
		assert.Equal(t, !tt.isInteger, v.Set(tt.in).Integer("").Run().Invalid, "integer(%#v)", tt.in)
	}

	assert.Equal(t, validation.MsgNumeric, v.Set("x").Numeric("").Run().Message)
	assert.Equal(t, validation.MsgInteger, v.Set("1.5").Integer("").Run().Message)
}

func TestValidator_MinMax(t *testing.T) {
	t.Parallel()

	v := newValidator()

	t.Run("multibyte characters", func(t *testing.T) {
		assert.False(t, v.Set("日本語").Min(3, "").Run().Invalid)
		assert.Equal(t, validation.Failure(validation.MsgMin), v.Set("日本語").Min(4, "").Run())
		assert.False(t, v.Set("日本語").Max(3, "").Run().Invalid)
		assert.Equal(t, validation.Failure(validation.MsgMax), v.Set("日本語").Max(2, "").Run())
	})

	t.Run("numbers are measured by string form", func(t *testing.T) {
		assert.False(t, v.Set(12345).Min(5, "").Max(5, "").Run().Invalid)
		assert.True(t, v.Set(1234).Min(5, "").Run().Invalid)
	})

	t.Run("first failing bound wins", func(t *testing.T) {
		res := v.Set("ab").Min(3, "too short").Max(1, "too long").Run()
		assert.Equal(t, "too short", res.Message)
	})
}

func TestValidator_Equals(t *testing.T) {
	t.Parallel()

	v := newValidator()
	assert.True(t, v.Set(123).Equals("123", "").Run().Invalid)
	assert.False(t, v.Set("123").Equals("123", "").Run().Invalid)
	assert.False(t, v.Set(123).Equals(123, "").Run().Invalid)
	assert.True(t, v.Set(1).Equals(1.0, "").Run().Invalid)
	assert.True(t, v.Set("Secret").Equals("secret", "").Run().Invalid)
	assert.Equal(t, validation.MsgEquals, v.Set("a").Equals("b", "").Run().Message)
}

func TestValidator_Between(t *testing.T) {
	t.Parallel()

	v := newValidator()
	for _, in := range []any{1, 10, "5", 5.5, " 7 "} {
		assert.False(t, v.Set(in).Between(1, 10, "").Run().Invalid, "%#v", in)
	}
	for _, in := range []any{0, 11, "10.5", "abc", "", true, nil} {
		assert.Equal(t, validation.Failure(validation.MsgBetween), v.Set(in).Between(1, 10, "").Run(), "%#v", in)
	}
}

func TestValidator_Regex(t *testing.T) {
	t.Parallel()

	v := newValidator()

	t.Run("full match", func(t *testing.T) {
		assert.False(t, v.Set("abc123").Regex(`[a-z]+\d+`, "").Run().Invalid)
		assert.True(t, v.Set("abc123x").Regex(`[a-z]+\d+`, "").Run().Invalid)
		assert.True(t, v.Set("_abc123").Regex(`[a-z]+\d+`, "").Run().Invalid)
	})

	t.Run("alternation is anchored as a whole", func(t *testing.T) {
		assert.False(t, v.Set("ab").Regex(`a|ab`, "").Run().Invalid)
		assert.True(t, v.Set("abc").Regex(`a|ab`, "").Run().Invalid)
	})

	t.Run("numbers match their string form", func(t *testing.T) {
		assert.False(t, v.Set(2024).Regex(`\d{4}`, "").Run().Invalid)
	})

	t.Run("default message", func(t *testing.T) {
		assert.Equal(t, validation.MsgRegex, v.Set("x").Regex(`\d`, "").Run().Message)
	})

	t.Run("invalid pattern panics", func(t *testing.T) {
		err := recoverErr(func() { v.Set("x").Regex(`(`, "") })
		assert.ErrorIs(t, err, validation.ErrInvalidPattern)
	})

	t.Run("invalid pattern panics after a failure too", func(t *testing.T) {
		err := recoverErr(func() { v.Set("").Required("").Regex(`[`, "") })
		assert.ErrorIs(t, err, validation.ErrInvalidPattern)
		v.Run()
	})

	t.Run("precompiled pattern", func(t *testing.T) {
		re := regexp.MustCompile(`[A-Z]{2}-\d{3}`)
		assert.False(t, v.Set("AB-123").Pattern(re, "").Run().Invalid)
		assert.True(t, v.Set("xAB-123").Pattern(re, "").Run().Invalid)

		err := recoverErr(func() { v.Pattern(nil, "") })
		assert.ErrorIs(t, err, validation.ErrInvalidArgument)
	})
}

func TestValidator_Date(t *testing.T) {
	t.Parallel()

	v := newValidator()
	const layout = "2006-01-02"

	assert.False(t, v.Set("2024-02-29").Date(layout, "").Run().Invalid)
	assert.False(t, v.Set("2023-02-28").Date(layout, "").Run().Invalid)

	for _, in := range []string{"2023-02-29", "2023-13-01", "2023-2-28", "28.02.2023", "", "2023-02-28 "} {
		assert.Equal(t, validation.Failure(validation.MsgDate), v.Set(in).Date(layout, "").Run(), in)
	}

	assert.False(t, v.Set("28.02.2023 14:05").Date("02.01.2006 15:04", "").Run().Invalid)
	assert.True(t, v.Set("28.02.2023 24:05").Date("02.01.2006 15:04", "").Run().Invalid)

	assert.PanicsWithValue(t, validation.ErrInvalidLayout, func() { v.Date("", "") })
}

func TestValidator_In(t *testing.T) {
	t.Parallel()

	v := newValidator()
	allowed := []any{1, 2, 3}

	assert.True(t, v.Set("1").In(allowed, "").Run().Invalid)
	assert.False(t, v.Set(1).In(allowed, "").Run().Invalid)
	assert.True(t, v.Set(4).In(allowed, "").Run().Invalid)
	assert.True(t, v.Set(1).In(nil, "").Run().Invalid)
	assert.False(t, v.Set("pro").In([]any{"free", "pro"}, "").Run().Invalid)
	assert.Equal(t, validation.MsgIn, v.Set("x").In(allowed, "").Run().Message)
}

func TestValidator_Custom(t *testing.T) {
	t.Parallel()

	v := newValidator()
	even := func(val validation.Value) bool {
		n, ok := val.Number()
		return ok && int(n)%2 == 0
	}

	assert.False(t, v.Set(4).Custom(even, "").Run().Invalid)
	assert.Equal(t, validation.Failure("odd"), v.Set(3).Custom(even, "odd").Run())

	err := recoverErr(func() { v.Custom(nil, "") })
	assert.ErrorIs(t, err, validation.ErrInvalidArgument)
}
