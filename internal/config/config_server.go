package config

import (
	"fmt"
	"time"
)

// ServerApp holds the application settings the HTTP server needs.
type ServerApp struct {
	TokenSignKey     string
	TokenIssuer      string
	TokenDuration    time.Duration
	Version          string
	LogLevel         string
	SimulatedLatency time.Duration
}

// ServerConfig is the server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage Storage
	Server  Server
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields relevant to the HTTP server.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:     cfg.App.TokenSignKey,
			TokenIssuer:      cfg.App.TokenIssuer,
			TokenDuration:    cfg.App.TokenDuration,
			Version:          cfg.App.Version,
			LogLevel:         cfg.App.LogLevel,
			SimulatedLatency: cfg.App.SimulatedLatency,
		},
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}
}
