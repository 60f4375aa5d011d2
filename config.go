package formkit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/dateformat"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Config holds the environment driven settings of a Service.
type Config struct {
	DateFormat string `env:"FORMKIT_DATE_FORMAT" envDefault:"yyyy-MM-dd"`
	Timezone   string `env:"FORMKIT_TIMEZONE" envDefault:"UTC"`
	LogLevel   string `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"FORMKIT_LOG_FORMAT" envDefault:"json"`
	Service    string `env:"FORMKIT_SERVICE" envDefault:"formkit"`
}

// LoadConfig loads the given .env files, if any, and parses FORMKIT_*
// variables into a Config.
func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	if err := config.LoadEnv(envFiles...); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewLogger builds the logger described by cfg, writing to w.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.LogFormat)
	}
	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService(cfg.Service),
	), nil
}

// NewFromConfig builds a Service logging to stderr through NewLogger and whose
// date formatter uses cfg.Timezone. Extra options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, cfg.Timezone, err)
	}
	log, err := NewLogger(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithLogger(log),
		WithDateFormatter(dateformat.New(dateformat.WithLocation(loc))),
		WithDefaultDateFormat(cfg.DateFormat),
	}
	return New(append(base, opts...)...), nil
}
