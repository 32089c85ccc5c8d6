package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

func TestResults(t *testing.T) {
	t.Parallel()

	results := validation.Results{
		"a": validation.Failure("x"),
		"b": validation.Success("ok"),
	}

	t.Run("approve", func(t *testing.T) {
		t.Parallel()
		assert.False(t, results.Approve())
		assert.True(t, validation.Results{"b": validation.Success("ok")}.Approve())
		assert.True(t, validation.Results{}.Approve())
		assert.True(t, validation.Results(nil).Approve())
	})

	t.Run("validated", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]validation.Value{
			"a": validation.False(),
			"b": validation.String("ok"),
		}, results.Validated())
		assert.Equal(t, map[string]validation.Value{
			"b": validation.String("ok"),
		}, results.Validated("a", "missing"))
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]string{"a": "x"}, results.Errors())
		assert.Empty(t, results.Errors("a"))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()
		_ = results.Validated("a", "b")
		assert.Len(t, results, 2)
	})

	t.Run("malformed entries are reported as given", func(t *testing.T) {
		t.Parallel()
		odd := validation.Results{"c": {Value: validation.String("ok"), Message: "note"}}
		assert.True(t, odd.Approve())
		assert.Equal(t, map[string]string{"c": "note"}, odd.Errors())
	})

	t.Run("literal false value fails approval", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validation.Results{"agree": validation.Success(false)}.Approve())
	})
}

func TestResults_Err(t *testing.T) {
	t.Parallel()

	t.Run("nil when everything passed", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validation.Results{"a": validation.Success(1)}.Err())
		assert.NoError(t, validation.Results{"a": validation.Failure("x")}.Err("a"))
	})

	t.Run("sorted field errors", func(t *testing.T) {
		t.Parallel()
		err := validation.Results{
			"password": validation.Failure("too short"),
			"email":    validation.Failure("is invalid"),
			"name":     validation.Success("john"),
		}.Err()

		require.Error(t, err)
		assert.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Equal(t, "validation failed: email: is invalid; password: too short", err.Error())

		var fields validation.FieldErrors
		require.True(t, errors.As(err, &fields))
		assert.Equal(t, validation.FieldErrors{
			{Field: "email", Message: "is invalid"},
			{Field: "password", Message: "too short"},
		}, fields)
		assert.True(t, fields.Has("email"))
		assert.False(t, fields.Has("name"))
		assert.Equal(t, map[string]string{"email": "is invalid", "password": "too short"}, fields.Map())
	})

	t.Run("empty field errors message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "validation failed", validation.FieldErrors{}.Error())
	})
}
