package formkit

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	digitRegex  = regexp.MustCompile(`\d`)
	intPrefix   = regexp.MustCompile(`^\s*[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// toText returns strings unchanged, encodes structured values as JSON and
// converts everything else to its default text form. Nil becomes "null".
func toText(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}

	if structured(value) {
		if b, err := json.Marshal(value); err == nil {
			return string(b)
		}
	}
	return plainText(value)
}

func plainText(value any) string {
	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return s
}

func structured(value any) bool {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

// toInt parses the leading base-10 integer of the value's text form. The
// value is left alone (ok is false) unless that text contains a digit and
// starts with an integer that fits in an int.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case bool, nil:
		return 0, false
	case float32, float64:
		f := math.Trunc(cast.ToFloat64(v))
		if math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
			return 0, false
		}
		return int(f), true
	}

	text := guardText(value)
	if text == "" {
		return 0, false
	}
	prefix := intPrefix.FindString(text)
	if prefix == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// toFloat parses the leading decimal number of the value's text form under
// the same digit guard as toInt.
func toFloat(value any) (float64, bool) {
	if _, ok := value.(bool); ok {
		return 0, false
	}
	text := guardText(value)
	if text == "" {
		return 0, false
	}
	prefix := floatPrefix.FindString(text)
	if prefix == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(prefix), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// guardText returns the text form of a scalar value, or "" when it holds no
// digit. Structured values have no numeric text form.
func guardText(value any) string {
	if value == nil || structured(value) {
		return ""
	}
	text := plainText(value)
	if !digitRegex.MatchString(text) {
		return ""
	}
	return text
}

// truthy mirrors loose truthiness: nil, false, zero numbers, NaN, empty
// strings and nil pointers are false; everything else is true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
