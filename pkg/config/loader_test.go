package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type testConfig struct {
	String string `env:"TEST_STRING" envDefault:"default_value"`
	Int    int    `env:"TEST_INT" envDefault:"42"`
	Bool   bool   `env:"TEST_BOOL" envDefault:"true"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	String   string   `env:"TEST_FILE_STRING"`
	Int      int      `env:"TEST_FILE_INT"`
	List     []string `env:"TEST_FILE_LIST" envSeparator:","`
	Priority string   `env:"TEST_FILE_PRIORITY"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment variables", func(t *testing.T) {
		t.Setenv("TEST_STRING", "value")
		t.Setenv("TEST_INT", "100")
		t.Setenv("TEST_BOOL", "false")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, testConfig{String: "value", Int: 100, Bool: false}, cfg)
	})

	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, testConfig{String: "default_value", Int: 42, Bool: true}, cfg)
	})

	t.Run("fails on missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("fails on nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	assert.NotPanics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads values from file without overriding the environment", func(t *testing.T) {
		t.Setenv("TEST_FILE_PRIORITY", "env_value")
		for _, key := range []string{"TEST_FILE_STRING", "TEST_FILE_INT", "TEST_FILE_LIST"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_file", cfg.String)
		assert.Equal(t, 1234, cfg.Int)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
		assert.Equal(t, "env_value", cfg.Priority)
	})

	t.Run("missing file", func(t *testing.T) {
		assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
	})

	t.Run("no files is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
