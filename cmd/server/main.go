package main

import (
	"context"
	"fmt"

	"github.com/seanhoyal/go-carbon-api/internal/adapter"
	"github.com/seanhoyal/go-carbon-api/internal/config"
	myhttp "github.com/seanhoyal/go-carbon-api/internal/handler/http"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/server"
	"github.com/seanhoyal/go-carbon-api/internal/service"
	"github.com/seanhoyal/go-carbon-api/internal/store"
	"github.com/seanhoyal/go-carbon-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("carbon-api-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	carbon := adapter.NewCarbonClient(adapter.Config{
		BaseURL: cfg.Carbon.BaseURL,
		Timeout: cfg.Carbon.Timeout,
	}, log)
	services := service.NewServices(storages, carbon, cfg.App, log)
	handler := myhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
