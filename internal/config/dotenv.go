package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvFileVariable names the variable that points at a custom .env file.
const EnvFileVariable = "ENV_FILE"

const defaultEnvFile = ".env"

// loadDotEnv reads the file named by ENV_FILE, or ./.env when unset. A missing
// default file is not an error; a missing explicitly named file is.
func loadDotEnv() error {
	path, explicit := os.LookupEnv(EnvFileVariable)
	if !explicit || path == "" {
		path = defaultEnvFile
		explicit = false
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
