package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-invoice-audit/internal/config"
	"github.com/MKhiriev/go-invoice-audit/internal/handler/http"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/metrics"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	recorder metrics.Recorder,
	gatherer prometheus.Gatherer,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, recorder, gatherer, cfg, logger),
	}, nil
}
