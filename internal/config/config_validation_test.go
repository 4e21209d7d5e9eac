package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorageValidate(t *testing.T) {
	tests := []struct {
		name    string
		storage Storage
		wantErr error
	}{
		{name: "memory", storage: Storage{Driver: DriverMemory}},
		{name: "file with path", storage: Storage{Driver: DriverFile, File: File{Path: "kv.json"}}},
		{name: "file without path", storage: Storage{Driver: DriverFile}, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite with dsn", storage: Storage{Driver: DriverSQLite, DB: DB{DSN: "kv.db"}}},
		{name: "sqlite without dsn", storage: Storage{Driver: DriverSQLite}, wantErr: ErrInvalidStorageConfigs},
		{name: "postgres without dsn", storage: Storage{Driver: DriverPostgres}, wantErr: ErrInvalidStorageConfigs},
		{name: "empty driver", storage: Storage{}, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", storage: Storage{Driver: "redis"}, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.storage.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func validServerConfig() *ServerConfig {
	return NewServerConfig(&StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenDuration: time.Hour,
		},
		Storage: Storage{Driver: DriverMemory},
		Server: Server{
			HTTPAddress:   "localhost:8080",
			AuthRateLimit: 1,
			AuthRateBurst: 3,
		},
	})
}

func TestServerConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validServerConfig().validate())
	})

	t.Run("missing sign key", func(t *testing.T) {
		cfg := validServerConfig()
		cfg.App.TokenSignKey = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := validServerConfig()
		cfg.Server.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})

	t.Run("zero burst", func(t *testing.T) {
		cfg := validServerConfig()
		cfg.Server.AuthRateBurst = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})

	t.Run("bad storage", func(t *testing.T) {
		cfg := validServerConfig()
		cfg.Storage = Storage{Driver: DriverPostgres}
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := NewClientConfig(&StructuredConfig{
		App: App{
			Version:          "1.0.0",
			LogLevel:         "warn",
			SimulatedLatency: time.Second,
		},
		Storage: Storage{Driver: DriverFile, File: File{Path: "kv.json"}},
		Client:  Client{LogFile: "client.log"},
	})

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, time.Second, cfg.App.SimulatedLatency)
	assert.Equal(t, "kv.json", cfg.Storage.File.Path)
	assert.NoError(t, cfg.validate())
}
