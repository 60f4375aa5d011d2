package dateformat

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/spf13/cast"
)

// Formatter renders value according to pattern.
type Formatter interface {
	Format(value any, pattern string) (string, error)
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(value any, pattern string) (string, error)

func (f FormatterFunc) Format(value any, pattern string) (string, error) {
	return f(value, pattern)
}

// Option configures the default formatter.
type Option func(*formatter)

// WithLocation sets the location values are converted to before formatting
// and the default location for strings without zone information.
// Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(f *formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

type formatter struct {
	loc *time.Location
}

// New returns the default Formatter. Values are rendered in UTC unless
// WithLocation is given.
func New(opts ...Option) Formatter {
	f := &formatter{loc: time.UTC}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Format implements Formatter.
func (f *formatter) Format(value any, pattern string) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	t, err := f.toTime(value)
	if err != nil {
		return "", err
	}

	switch {
	case strings.Contains(pattern, "%"):
		return strftime.Format(pattern, t), nil
	case strings.Contains(pattern, "2006"):
		return t.Format(pattern), nil
	default:
		segments, err := compile(pattern)
		if err != nil {
			return "", err
		}
		return render(segments, t), nil
	}
}

func (f *formatter) toTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v.In(f.loc), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidValue)
		}
		return v.In(f.loc), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		ms, err := cast.ToInt64E(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return time.UnixMilli(ms).In(f.loc), nil
	case string:
		t, err := cast.ToTimeInDefaultLocationE(strings.TrimSpace(v), f.loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidValue, v)
		}
		return t.In(f.loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, value)
}
