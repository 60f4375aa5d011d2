package formkit

import (
	"errors"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DecodePayload decodes a submission payload into dst, a pointer to a struct
// or map. Struct fields are matched through `form` tags (falling back to a
// case-insensitive field name match); scalar types are converted weakly and
// RFC 3339 strings decode into time.Time.
func DecodePayload(payload map[string]any, dst any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "form",
		WeaklyTypedInput: true,
		Result:           dst,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return errors.Join(ErrDecodePayload, err)
	}
	if err := decoder.Decode(payload); err != nil {
		return errors.Join(ErrDecodePayload, err)
	}
	return nil
}
