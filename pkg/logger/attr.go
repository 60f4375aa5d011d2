package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// FormID records the form identifier under the key "form_id".
func FormID(id string) slog.Attr {
	return slog.String("form_id", id)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Operation records the helper being executed under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// FormatType records a payload format type under the key "format_type".
func FormatType(name string) slog.Attr {
	return slog.String("format_type", name)
}

// Count records a number of processed items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
