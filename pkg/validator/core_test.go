package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "password", Code: "minlength", Message: "too short"},
		{Field: "password", Code: "pattern", Message: "missing digit"},
		{Field: "email", Code: "required", Message: "is required"},
	}

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Equal(t, []string{"minlength", "pattern"}, errs.Codes("password"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.Nil(t, errs.Get("name"))
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when every rule passes", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required()("john"),
			validator.MinLength(2)("john"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failing rules in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required()(""),
			validator.Email()("nope"),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, validator.CodeRequired, verrs[0].Code)
		assert.Equal(t, validator.CodeEmail, verrs[1].Code)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("skips nil validators", func(t *testing.T) {
		t.Parallel()
		errs := validator.Run("", nil, validator.Required())
		require.Len(t, errs, 1)
		assert.Equal(t, validator.CodeRequired, errs[0].Code)
	})

	t.Run("returns nil without failures", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.Run("x", validator.Required()))
		assert.Nil(t, validator.Run(nil))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for nil error", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("returns nil for unrelated error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("unwraps joined errors", func(t *testing.T) {
		t.Parallel()
		verrs := validator.ValidationErrors{{Field: "name", Code: "required"}}
		err := errors.Join(validator.ErrValidationFailed, verrs)

		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, verrs, validator.ExtractValidationErrors(err))
	})
}
