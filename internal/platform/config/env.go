package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag so commands share one namespace.
const EnvPrefix = "HITPOINTS_"

// ParseEnv loads configuration from HITPOINTS_-prefixed environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LookupEnv returns the value of a prefixed environment variable.
func LookupEnv(name string) (string, bool) {
	values := env.ToMap(osEnviron())
	value, ok := values[EnvPrefix+name]
	return value, ok
}
