package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files into the process
// environment. Variables already set are not overridden. With no arguments it
// reads ./.env.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses the process environment into a new T using `env` struct tags.
//
//	type HTTP struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[HTTP]()
func Load[T any]() (T, error) {
	return LoadPrefixed[T]("")
}

// LoadPrefixed is like Load but prepends prefix to every variable name, so
// the same struct can be loaded several times from differently named
// variables (SIGNER_SECRET, CIPHER_SECRET).
func LoadPrefixed[T any](prefix string) (T, error) {
	cfg, err := env.ParseAsWithOptions[T](env.Options{Prefix: prefix})
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on failure. Use it for configuration a
// binary cannot start without.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
