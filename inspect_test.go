package formkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestFieldErrorMessage(t *testing.T) {
	t.Parallel()

	c := form.NewControl("", validator.Required())

	detail, ok := formkit.FieldErrorMessage(c, validator.CodeRequired)
	require.True(t, ok)
	ve, isVE := detail.(validator.ValidationError)
	require.True(t, isVE)
	assert.Equal(t, validator.CodeRequired, ve.Code)

	detail, ok = formkit.FieldErrorMessage(c, validator.CodeEmail)
	assert.False(t, ok)
	assert.Nil(t, detail)

	var nilControl *form.Control
	_, ok = formkit.FieldErrorMessage(nilControl, validator.CodeRequired)
	assert.False(t, ok)
	_, ok = formkit.FieldErrorMessage(nil, validator.CodeRequired)
	assert.False(t, ok)
}

func TestIsValidWithMarks(t *testing.T) {
	t.Parallel()

	t.Run("requires every mark to hold", func(t *testing.T) {
		t.Parallel()
		c := form.NewControl("value")
		c.MarkAsTouched()
		c.MarkAsDirty()

		assert.True(t, formkit.IsValidWithMarks(c, form.MarkTouched))
		assert.True(t, formkit.IsValidWithMarks(c, form.MarkTouched, form.MarkDirty, form.MarkValid))
		assert.False(t, formkit.IsValidWithMarks(c, form.MarkTouched, form.MarkPristine))
		assert.False(t, formkit.IsValidWithMarks(c, form.MarkUntouched))
		assert.False(t, formkit.IsValidWithMarks(c, form.MarkInvalid))
	})

	t.Run("invalid mark on failing control", func(t *testing.T) {
		t.Parallel()
		c := form.NewControl("", validator.Required())
		assert.True(t, formkit.IsValidWithMarks(c, form.MarkInvalid, form.MarkPristine, form.MarkUntouched))
		assert.False(t, formkit.IsValidWithMarks(c, form.MarkValid))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()
		c := form.NewControl("")
		c.MarkAsTouched()
		assert.True(t, formkit.IsValidWithMarks(c, form.MarkTouched, form.MarkTouched))
	})

	t.Run("empty marks or nil control", func(t *testing.T) {
		t.Parallel()
		c := form.NewControl("")
		assert.False(t, formkit.IsValidWithMarks(c))
		assert.False(t, formkit.IsValidWithMarks(nil, form.MarkPristine))

		var nilControl *form.Control
		assert.False(t, formkit.IsValidWithMarks(nilControl, form.MarkPristine))
	})

	t.Run("unknown mark never holds", func(t *testing.T) {
		t.Parallel()
		assert.False(t, formkit.IsValidWithMarks(form.NewControl(""), form.Mark("focused")))
	})
}

func TestIsFormValid(t *testing.T) {
	t.Parallel()

	f := newProfileForm(t)
	assert.True(t, formkit.IsFormValid(f))

	control(t, f, "email").SetErrors(map[string]any{"email": true})
	assert.False(t, formkit.IsFormValid(f))

	control(t, f, "email").Disable()
	assert.True(t, formkit.IsFormValid(f), "disabled controls do not count")

	assert.False(t, formkit.IsFormValid(nil))
}

func TestFieldErrorMap(t *testing.T) {
	t.Parallel()

	t.Run("valid form yields an empty map", func(t *testing.T) {
		t.Parallel()
		got := formkit.FieldErrorMap(newProfileForm(t))
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("lists only fields with errors", func(t *testing.T) {
		t.Parallel()
		f := newProfileForm(t)
		control(t, f, "name").SetErrors(map[string]any{"required": true})
		control(t, f, "age").SetErrors(map[string]any{"min": 18, "pattern": "digits"})

		got := formkit.FieldErrorMap(f)
		assert.Equal(t, map[string]map[string]any{
			"name": {"required": true},
			"age":  {"min": 18, "pattern": "digits"},
		}, got)

		got["name"]["extra"] = true
		assert.False(t, control(t, f, "name").HasError("extra"), "result is a copy")
	})

	t.Run("nil form", func(t *testing.T) {
		t.Parallel()
		got := formkit.FieldErrorMap(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid form", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, formkit.Validate(newProfileForm(t)))
		assert.NoError(t, formkit.Validate(nil))
	})

	t.Run("invalid form returns validation errors", func(t *testing.T) {
		t.Parallel()
		f := newProfileForm(t)
		control(t, f, "email").SetValidators(validator.Required(), validator.Email())
		control(t, f, "email").SetValue("not-an-email")
		control(t, f, "name").SetErrors(map[string]any{formkit.ErrorMustMatch: true})

		err := formkit.Validate(f)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.True(t, errs.Has("email"))
		assert.True(t, errs.Has("name"))
		assert.Equal(t, []string{validator.CodeEmail}, errs.Codes("email"))
		assert.Equal(t, []string{formkit.ErrorMustMatch}, errs.Codes("name"))
	})
}
