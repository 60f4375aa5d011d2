package formkit

import (
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/dateformat"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Service runs the form helpers. The zero value is not usable; call New.
type Service struct {
	logger     *slog.Logger
	dates      dateformat.Formatter
	dateFormat string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for debug traces of skipped fields.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDateFormatter replaces the formatter used for FormatDate fields.
// Nil is ignored.
func WithDateFormatter(f dateformat.Formatter) Option {
	return func(s *Service) {
		if f != nil {
			s.dates = f
		}
	}
}

// WithDefaultDateFormat sets the pattern used for FormatDate fields that do
// not carry their own DateFormat.
func WithDefaultDateFormat(pattern string) Option {
	return func(s *Service) {
		s.dateFormat = pattern
	}
}

// New creates a Service. Without options it logs nowhere and formats dates
// in UTC.
func New(opts ...Option) *Service {
	s := &Service{
		logger: logger.Discard(),
		dates:  dateformat.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) skip(op string, f form.Form, field, reason string) {
	attrs := []any{
		logger.Operation(op),
		logger.Field(field),
		slog.String("reason", reason),
	}
	if !missing(f) {
		attrs = append(attrs, logger.FormID(f.ID()))
	}
	s.logger.Debug("field skipped", attrs...)
}

// missing reports whether f is nil, including a typed nil pointer.
func missing(f form.Form) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
