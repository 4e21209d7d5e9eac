package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-invoice-audit/internal/client"
	"github.com/MKhiriev/go-invoice-audit/internal/config"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/internal/session"
	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/internal/tui"
	"github.com/MKhiriev/go-invoice-audit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the UI
	log := logger.NewFileLogger("invoice-audit-client", cfg.App.LogFile, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	sessions := session.NewStore(storages.KeyValue, log)

	services, err := service.NewClientServices(sessions, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui := tui.New(services, sessions, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(sessions, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		stop()
		storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
