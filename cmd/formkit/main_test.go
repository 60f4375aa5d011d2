package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Setenv("FORMKIT_LOG_LEVEL", "error")

	t.Run("valid input prints the payload", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		in := strings.NewReader(`{"email":"jane@example.com","password":"s3cret","confirm":"s3cret","age":"21","birth_date":"2003-04-05"}`)

		code := run([]string{"-def", "testdata/signup.yaml"}, in, &stdout, &stderr)
		require.Equal(t, exitOK, code, stderr.String())

		var payload map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &payload))
		assert.Equal(t, map[string]any{
			"email": "jane@example.com",
			"age":   21.0,
			"born":  "2003/04/05",
		}, payload)
	})

	t.Run("invalid input prints the error map", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		in := strings.NewReader(`{"email":"nope","password":"s3cret","confirm":"other","age":"12"}`)

		code := run([]string{"-def", "testdata/signup.yaml"}, in, &stdout, &stderr)
		assert.Equal(t, exitInvalid, code)

		var out struct {
			Errors map[string]map[string]any `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.Contains(t, out.Errors["email"], "email")
		assert.Contains(t, out.Errors["age"], "min")
		assert.Contains(t, out.Errors["confirm"], "mustMatch")
		assert.NotContains(t, out.Errors, "password")
	})

	t.Run("missing definition flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(nil, strings.NewReader(""), &stdout, &stderr)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr.String(), "-def is required")
	})

	t.Run("broken data", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-def", "testdata/signup.yaml"}, strings.NewReader("{"), &stdout, &stderr)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr.String(), "read data")
	})

	t.Run("errors use the configured log format", func(t *testing.T) {
		t.Setenv("FORMKIT_LOG_FORMAT", "json")
		var stdout, stderr bytes.Buffer
		code := run([]string{"-def", "testdata/signup.yaml"}, strings.NewReader("{"), &stdout, &stderr)
		assert.Equal(t, exitUsage, code)

		var record map[string]any
		require.NoError(t, json.Unmarshal(stderr.Bytes(), &record))
		assert.Equal(t, "read data", record["msg"])
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "formkit", record["service"])
	})

	t.Run("invalid log level is reported", func(t *testing.T) {
		t.Setenv("FORMKIT_LOG_LEVEL", "chatty")
		var stdout, stderr bytes.Buffer
		code := run([]string{"-def", "testdata/signup.yaml"}, strings.NewReader("{}"), &stdout, &stderr)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr.String(), "init logger")
	})
}
