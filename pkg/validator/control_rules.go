package validator

import (
	"fmt"
	"math"
	"net/mail"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Error codes stored on a control when the matching validator fails.
const (
	CodeRequired     = "required"
	CodeRequiredTrue = "requiredTrue"
	CodeMinLength    = "minlength"
	CodeMaxLength    = "maxlength"
	CodePattern      = "pattern"
	CodeMin          = "min"
	CodeMax          = "max"
	CodeEmail        = "email"
)

// Required fails for nil, empty strings and empty collections.
func Required() Validator {
	return func(value any) Rule {
		return Rule{
			Check: func() bool {
				return !IsEmpty(value)
			},
			Error: ValidationError{
				Code:           CodeRequired,
				Message:        "field is required",
				TranslationKey: "validation.required",
			},
		}
	}
}

// RequiredTrue fails unless the value is the boolean true. Used for consent checkboxes.
func RequiredTrue() Validator {
	return func(value any) Rule {
		return Rule{
			Check: func() bool {
				b, ok := value.(bool)
				return ok && b
			},
			Error: ValidationError{
				Code:           CodeRequiredTrue,
				Message:        "must be checked",
				TranslationKey: "validation.required_true",
			},
		}
	}
}

// MinLength checks the rune length of strings and the length of collections.
// Empty values and values without a length pass; combine with Required when needed.
func MinLength(min int) Validator {
	return func(value any) Rule {
		n, ok := length(value)
		return Rule{
			Check: func() bool {
				return IsEmpty(value) || !ok || n >= min
			},
			Error: ValidationError{
				Code:           CodeMinLength,
				Message:        fmt.Sprintf("must be at least %d characters long", min),
				TranslationKey: "validation.min_length",
				TranslationValues: map[string]any{
					"requiredLength": min,
					"actualLength":   n,
				},
			},
		}
	}
}

func MaxLength(max int) Validator {
	return func(value any) Rule {
		n, ok := length(value)
		return Rule{
			Check: func() bool {
				return IsEmpty(value) || !ok || n <= max
			},
			Error: ValidationError{
				Code:           CodeMaxLength,
				Message:        fmt.Sprintf("must be at most %d characters long", max),
				TranslationKey: "validation.max_length",
				TranslationValues: map[string]any{
					"requiredLength": max,
					"actualLength":   n,
				},
			},
		}
	}
}

// Pattern matches the textual form of the value against expr.
// The expression is anchored at both ends unless it already is.
// Panics if expr does not compile; use CompilePattern for untrusted input.
func Pattern(expr string) Validator {
	v, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return v
}

// CompilePattern is like Pattern but returns an error for invalid expressions.
func CompilePattern(expr string) (Validator, error) {
	anchored := expr
	if !strings.HasPrefix(anchored, "^") {
		anchored = "^" + anchored
	}
	if !strings.HasSuffix(anchored, "$") {
		anchored += "$"
	}
	regex, err := regexp.Compile(anchored)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
	}

	return func(value any) Rule {
		text := cast.ToString(value)
		return Rule{
			Check: func() bool {
				return IsEmpty(value) || regex.MatchString(text)
			},
			Error: ValidationError{
				Code:           CodePattern,
				Message:        "has an invalid format",
				TranslationKey: "validation.regex_pattern",
				TranslationValues: map[string]any{
					"requiredPattern": anchored,
					"actualValue":     text,
				},
			},
		}
	}, nil
}

// Min fails when the numeric form of the value is below min.
// Empty and non-numeric values pass.
func Min[T Numeric](min T) Validator {
	return func(value any) Rule {
		n, ok := number(value)
		return Rule{
			Check: func() bool {
				return !ok || n >= float64(min)
			},
			Error: ValidationError{
				Code:           CodeMin,
				Message:        fmt.Sprintf("must be at least %v", min),
				TranslationKey: "validation.min",
				TranslationValues: map[string]any{
					"min":    min,
					"actual": value,
				},
			},
		}
	}
}

func Max[T Numeric](max T) Validator {
	return func(value any) Rule {
		n, ok := number(value)
		return Rule{
			Check: func() bool {
				return !ok || n <= float64(max)
			},
			Error: ValidationError{
				Code:           CodeMax,
				Message:        fmt.Sprintf("must be at most %v", max),
				TranslationKey: "validation.max",
				TranslationValues: map[string]any{
					"max":    max,
					"actual": value,
				},
			},
		}
	}
}

// Email validates a bare address (no display name). Empty values pass.
func Email() Validator {
	return func(value any) Rule {
		return Rule{
			Check: func() bool {
				if IsEmpty(value) {
					return true
				}
				s, ok := value.(string)
				return ok && validEmail(s)
			},
			Error: ValidationError{
				Code:           CodeEmail,
				Message:        "must be a valid email address",
				TranslationKey: "validation.email",
			},
		}
	}
}

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsEmpty reports whether value counts as "no input": nil, an empty string,
// or an empty slice, array or map.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func length(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

func number(value any) (float64, bool) {
	if IsEmpty(value) {
		return 0, false
	}
	if _, ok := value.(bool); ok {
		return 0, false
	}
	n, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	localPart, domain, found := strings.Cut(addr.Address, "@")
	if !found || localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
