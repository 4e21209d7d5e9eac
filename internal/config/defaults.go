package config

import "time"

// Default values applied when no source sets a field.
const (
	DefaultSimulatedLatency = 1500 * time.Millisecond
	DefaultTokenDuration    = 12 * time.Hour
	DefaultTokenIssuer      = "invoice-audit"
	DefaultHTTPAddress      = "localhost:8080"
	DefaultStoragePath      = "invoice-audit.json"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			Version:          "dev",
			LogLevel:         "info",
			SimulatedLatency: DefaultSimulatedLatency,
		},
		Storage: Storage{
			Driver: DriverFile,
			File:   File{Path: DefaultStoragePath},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AuthRateLimit:   1,
			AuthRateBurst:   5,
		},
	}
}
