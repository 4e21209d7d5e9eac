// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Only values that are set are
// checked here; the server and client views enforce their required fields.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Driver != "" && !knownDriver(cfg.Storage.Driver) {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	return cfg.Storage.validate()
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverFile:
		if s.File.Path == "" {
			return ErrInvalidStorageConfigs
		}
		return nil
	case DriverSQLite, DriverPostgres:
		if s.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
		return nil
	default:
		return ErrInvalidStorageConfigs
	}
}

func knownDriver(driver string) bool {
	switch driver {
	case DriverMemory, DriverFile, DriverSQLite, DriverPostgres:
		return true
	}
	return false
}
