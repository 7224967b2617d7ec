package main

import (
	"fmt"

	"github.com/MKhiriev/go-tender-search/internal/adapter"
	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/handler"
	"github.com/MKhiriev/go-tender-search/internal/identity"
	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/internal/server"
	"github.com/MKhiriev/go-tender-search/internal/service"
	"github.com/MKhiriev/go-tender-search/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("tender-search")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.WithLevel(cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("function_url", cfg.Function.URL).
		Str("project_id", cfg.GCP.ProjectID).
		Bool("service_account", cfg.GCP.HasServiceAccount()).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	tokens, err := identity.NewTokenProvider(cfg.GCP, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity token provider")
	}

	functionAdapter := adapter.NewCloudFunctionAdapter(cfg.Function, tokens, log)

	services, err := service.NewServices(functionAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
