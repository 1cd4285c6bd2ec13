package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envFileVariable = "CARD_KEEPER_ENV_FILE"
	defaultEnvFile  = ".env"
)

func dotEnvPath() string {
	if path := os.Getenv(envFileVariable); path != "" {
		return path
	}
	return defaultEnvFile
}

// loadDotEnv copies variables from path into the process environment.
// A variable that is already set to a non-empty value keeps it; an empty one
// is filled from the file, matching env.Parse which treats empty as unset.
func loadDotEnv(path string) error {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	for key, value := range values {
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("error setting %s from env file %q: %w", key, path, err)
		}
	}
	return nil
}
