package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// dotEnvFile is read relative to the working directory.
var dotEnvFile = ".env"

// loadFromEnv overrides configuration with environment variables. Values from a .env
// file are exported first without replacing variables that are already set.
// Each field is looked up by its short name (DB_HOST) or its nested name (DATABASE_DB_HOST);
// unset variables leave the file or default value in place.
func loadFromEnv(config *Config) error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", dotEnvFile, err)
	}

	if err := envconfig.Process("", config); err != nil {
		return err
	}

	return nil
}
