// Package binder extracts request bodies into the plain map[string]any shape
// form helpers patch values from.
//
// Values dispatches on the Content-Type header:
//
//   - application/x-www-form-urlencoded: body and query values
//   - multipart/form-data: text parts (file parts are ignored)
//   - application/json: a single JSON object
//
// Form fields with one value map to a string, repeated fields to []string.
// JSON values keep their decoded types (float64, bool, nested maps, ...).
//
//	data, err := binder.Values(r)
//	if err != nil {
//	    return err // wraps ErrUnsupportedMediaType, ErrInvalidForm, ...
//	}
//	svc.PatchFormValues(signup, data)
package binder
