package formkit

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// BuildSubmissionPayload returns the form value with every add entry written
// (later entries win) and every remove key deleted. The form is not modified.
func (s *Service) BuildSubmissionPayload(f form.Form, add []Field, remove []string) map[string]any {
	const op = "build_submission_payload"
	if missing(f) {
		return nil
	}
	payload := f.Value()
	for _, field := range add {
		if field.Name == "" {
			s.skip(op, f, field.Name, "empty name")
			continue
		}
		payload[field.Name] = field.Value
	}
	for _, name := range remove {
		delete(payload, name)
	}
	return payload
}

// FormatPayload returns the form value with the per-field transformations of
// formatList applied in order. Only the named key is touched by each entry.
// A date formatting failure aborts the call with an error wrapping
// ErrDateFormat.
func (s *Service) FormatPayload(f form.Form, formatList []Field) (map[string]any, error) {
	const op = "format_payload"
	if missing(f) {
		return nil, nil
	}
	payload := f.Value()

	for _, field := range formatList {
		if field.FormatType == FormatAdd {
			if field.Name == "" {
				s.skip(op, f, field.Name, "empty name")
				continue
			}
			payload[field.Name] = field.Value
			continue
		}

		value, ok := payload[field.Name]
		if !ok {
			s.skip(op, f, field.Name, "not in payload")
			continue
		}

		switch field.FormatType {
		case FormatRemove:
			delete(payload, field.Name)
		case FormatString:
			payload[field.Name] = toText(value)
		case FormatNumber:
			if n, ok := toInt(value); ok {
				payload[field.Name] = n
			}
		case FormatFloat:
			if n, ok := toFloat(value); ok {
				payload[field.Name] = n
			}
		case FormatBoolean:
			payload[field.Name] = truthy(value)
		case FormatDate:
			formatted, err := s.formatDate(value, field.DateFormat)
			if err != nil {
				s.logger.Debug("date format failed",
					logger.Operation(op),
					logger.FormID(f.ID()),
					logger.Field(field.Name),
					logger.FormatType(string(field.FormatType)),
					logger.Error(err),
				)
				return nil, fmt.Errorf("%w: field %q: %w", ErrDateFormat, field.Name, err)
			}
			payload[field.Name] = formatted
		default:
			s.skip(op, f, field.Name, "unknown format type "+string(field.FormatType))
		}
	}
	s.logger.Debug("payload formatted",
		logger.Operation(op),
		logger.FormID(f.ID()),
		logger.Count(len(formatList)),
	)
	return payload, nil
}

func (s *Service) formatDate(value any, pattern string) (any, error) {
	if pattern == "" {
		pattern = s.dateFormat
	}
	if pattern == "" {
		return value, nil
	}
	if value == nil || value == "" {
		return nil, nil
	}
	return s.dates.Format(value, pattern)
}

// PatchFormValues patches the form from data. Each mapped key descriptor
// additionally copies data[MappedKey] to Name when data has that key; such
// copies take precedence over a same-named key in data.
func (s *Service) PatchFormValues(f form.Form, data map[string]any, mappedKeys ...Field) form.Form {
	const op = "patch_form_values"
	if missing(f) {
		return f
	}
	if len(mappedKeys) == 0 {
		f.PatchValue(data)
		return f
	}

	merged := make(map[string]any, len(data)+len(mappedKeys))
	for k, v := range data {
		merged[k] = v
	}
	for _, mk := range mappedKeys {
		if mk.Name == "" || mk.MappedKey == "" {
			s.skip(op, f, mk.Name, "incomplete mapping")
			continue
		}
		v, ok := data[mk.MappedKey]
		if !ok {
			s.skip(op, f, mk.Name, "mapped key "+mk.MappedKey+" not in data")
			continue
		}
		merged[mk.Name] = v
	}
	f.PatchValue(merged)
	return f
}
