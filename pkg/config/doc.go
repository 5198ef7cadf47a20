// Package config loads environment variables into typed structs.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for .env files. Each configuration type is parsed once per process and then
// served from an in-memory cache.
//
//	type Settings struct {
//	    Env      string `env:"FIELDCHECK_ENV" envDefault:"development"`
//	    LogLevel string `env:"FIELDCHECK_LOG_LEVEL"`
//	    Rules    string `env:"FIELDCHECK_RULES"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// The first Load also reads ./.env when present. LoadEnv reads other files;
// later files win over earlier ones and over variables already set.
//
// # Errors
//
// ErrParsingConfig wraps the env parse failure (a missing required variable, a
// value of the wrong type). ErrLoadingEnvFile wraps a .env read failure.
// ErrNilPointer is returned for a nil target. A failed Load is not cached.
//
// # Testing
//
// ResetCache clears every cached type and ForceReload re-parses one type after
// the environment changed.
package config
