package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

const (
	// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
	DefaultMaxMemory = 10 << 20
	// DefaultMaxJSONSize is the maximum size for JSON request bodies (1MB).
	DefaultMaxJSONSize = 1 << 20
)

// Values extracts the request body into a map keyed by field name.
func Values(r *http.Request) (map[string]any, error) {
	if r == nil {
		return nil, ErrNilRequest
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected form or JSON body", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type %q", ErrUnsupportedMediaType, contentType)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return flatten(r.Form), nil

	case "multipart/form-data":
		// Request size limits belong to the server or middleware.
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if r.MultipartForm == nil {
			return map[string]any{}, nil
		}
		return flatten(r.MultipartForm.Value), nil

	case "application/json":
		return decodeJSON(r.Body)
	}

	return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded, multipart/form-data or application/json", ErrUnsupportedMediaType, mediaType)
}

func flatten(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			out[key] = vals[0]
		default:
			out[key] = append([]string(nil), vals...)
		}
	}
	return out
}

func decodeJSON(body io.Reader) (map[string]any, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	raw, err := io.ReadAll(io.LimitReader(body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
	}
	if len(raw) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidJSON, DefaultMaxJSONSize)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
