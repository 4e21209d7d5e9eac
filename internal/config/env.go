// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment, which by now may also
// carry values loaded from a .env file. Unset variables leave zero values so
// that later sources and defaults can fill them in.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment variables: %w", err)
	}

	// STORAGE_DRIVER=SQLite is accepted the same as sqlite.
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	return nil
}
