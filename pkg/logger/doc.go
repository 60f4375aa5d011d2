// Package logger builds the *slog.Logger used across formkit and keeps
// attribute names consistent through small constructor helpers.
//
// New creates a logger configured by functional options: output format
// (json or text), minimum level, destination writer and static attributes.
// JSON at INFO level is the default.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("signup-api"),
//	)
//	log.Debug("field skipped", logger.Operation("set_validations"), logger.Field("email"))
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
