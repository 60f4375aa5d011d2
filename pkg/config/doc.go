// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment
//     (variables that are already set are never overridden).
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags. The default .env file in the working
//     directory is read once, silently, on first use.
//   - MustLoad panics on failure, for configuration that is required at
//     startup.
//
// # Usage
//
//	type Config struct {
//	    DateFormat string `env:"FORMKIT_DATE_FORMAT" envDefault:"yyyy-MM-dd"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer; compare them with errors.Is.
package config
