package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-invoice-audit/internal/config"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/metrics"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
)

type Handler struct {
	services *service.Services
	recorder metrics.Recorder
	gatherer prometheus.Gatherer
	limiter  *RateLimiter
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler builds the API handler. gatherer backs the /metrics endpoint
// and may be nil, in which case the endpoint is not mounted.
func NewHandler(
	services *service.Services,
	recorder metrics.Recorder,
	gatherer prometheus.Gatherer,
	cfg config.Server,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		recorder: recorder,
		gatherer: gatherer,
		limiter:  NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		cfg:      cfg,
		logger:   logger,
	}
}
