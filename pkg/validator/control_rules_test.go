package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	rule := validator.Required()

	t.Run("fails for empty values", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{nil, "", []string{}, map[string]any{}} {
			assert.False(t, rule(v).Check(), "value %#v", v)
		}
	})

	t.Run("passes for present values", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{"john", " ", 0, false, []int{1}} {
			assert.True(t, rule(v).Check(), "value %#v", v)
		}
	})

	t.Run("carries the required code", func(t *testing.T) {
		t.Parallel()
		r := rule(nil)
		assert.Equal(t, validator.CodeRequired, r.Error.Code)
		assert.Equal(t, "validation.required", r.Error.TranslationKey)
	})
}

func TestRequiredTrue(t *testing.T) {
	t.Parallel()

	rule := validator.RequiredTrue()
	assert.True(t, rule(true).Check())
	assert.False(t, rule(false).Check())
	assert.False(t, rule("true").Check())
	assert.False(t, rule(nil).Check())
	assert.Equal(t, validator.CodeRequiredTrue, rule(false).Error.Code)
}

func TestMinLength(t *testing.T) {
	t.Parallel()

	rule := validator.MinLength(3)

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, rule("żół").Check())
		assert.False(t, rule("żó").Check())
	})

	t.Run("checks collection length", func(t *testing.T) {
		t.Parallel()
		assert.True(t, rule([]int{1, 2, 3}).Check())
		assert.False(t, rule([]int{1}).Check())
	})

	t.Run("ignores empty values and values without length", func(t *testing.T) {
		t.Parallel()
		assert.True(t, rule("").Check())
		assert.True(t, rule(nil).Check())
		assert.True(t, rule(42).Check())
	})

	t.Run("reports required and actual length", func(t *testing.T) {
		t.Parallel()
		r := rule("ab")
		assert.Equal(t, validator.CodeMinLength, r.Error.Code)
		assert.Equal(t, map[string]any{"requiredLength": 3, "actualLength": 2}, r.Error.TranslationValues)
		assert.Equal(t, "must be at least 3 characters long", r.Error.Message)
	})
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	rule := validator.MaxLength(4)
	assert.True(t, rule("john").Check())
	assert.False(t, rule("johnny").Check())
	assert.True(t, rule("").Check())
	assert.Equal(t, validator.CodeMaxLength, rule("johnny").Error.Code)
}

func TestPattern(t *testing.T) {
	t.Parallel()

	t.Run("anchors the expression", func(t *testing.T) {
		t.Parallel()
		rule := validator.Pattern(`[0-9]+`)
		assert.True(t, rule("123").Check())
		assert.False(t, rule("12a").Check())
		assert.Equal(t, "^[0-9]+$", rule("12a").Error.TranslationValues["requiredPattern"])
	})

	t.Run("keeps existing anchors", func(t *testing.T) {
		t.Parallel()
		rule := validator.Pattern(`^ab$`)
		assert.Equal(t, "^ab$", rule("x").Error.TranslationValues["requiredPattern"])
	})

	t.Run("matches the text form of numbers", func(t *testing.T) {
		t.Parallel()
		rule := validator.Pattern(`\d{2}`)
		assert.True(t, rule(42).Check())
	})

	t.Run("empty value passes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.Pattern(`\d+`)("").Check())
	})

	t.Run("invalid expression", func(t *testing.T) {
		t.Parallel()
		_, err := validator.CompilePattern(`(`)
		require.ErrorIs(t, err, validator.ErrInvalidPattern)
		assert.Panics(t, func() { validator.Pattern(`(`) })
	})
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	minRule := validator.Min(18)
	maxRule := validator.Max(65.5)

	assert.True(t, minRule(18).Check())
	assert.True(t, minRule("21").Check())
	assert.False(t, minRule(17).Check())
	assert.False(t, minRule("10").Check())
	assert.True(t, minRule("").Check(), "empty values are ignored")
	assert.True(t, minRule("abc").Check(), "non numeric values are ignored")
	assert.True(t, minRule(true).Check(), "booleans are not numbers")

	assert.True(t, maxRule(65.5).Check())
	assert.False(t, maxRule(66).Check())
	assert.Equal(t, validator.CodeMax, maxRule(66).Error.Code)
	assert.Equal(t, 65.5, maxRule(66).Error.TranslationValues["max"])
}

func TestEmail(t *testing.T) {
	t.Parallel()

	rule := validator.Email()

	for _, v := range []any{"john@example.com", "a.b+c@mail.example.org", ""} {
		assert.True(t, rule(v).Check(), "value %#v", v)
	}
	for _, v := range []any{"john", "john@localhost", "John <john@example.com>", "john@.com", 12} {
		assert.False(t, rule(v).Check(), "value %#v", v)
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilMap map[string]any
	var nilPtr *string

	assert.True(t, validator.IsEmpty(nil))
	assert.True(t, validator.IsEmpty(""))
	assert.True(t, validator.IsEmpty(nilMap))
	assert.True(t, validator.IsEmpty(nilPtr))
	assert.False(t, validator.IsEmpty(0))
	assert.False(t, validator.IsEmpty(" "))
}
