package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-invoice-audit/internal/config"
	"github.com/MKhiriev/go-invoice-audit/internal/handler"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/metrics"
	"github.com/MKhiriev/go-invoice-audit/internal/server"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/internal/session"
	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("invoice-audit-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("invoice-audit-server", cfg.App.LogLevel)

	log.Debug().Str("driver", cfg.Storage.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	sessions := session.NewStore(storages.KeyValue, log)
	if err = sessions.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("error restoring session")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	services, err := service.NewServices(sessions, collector, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, collector, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
