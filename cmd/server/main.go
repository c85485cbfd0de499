package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/legacy-vault/internal/config"
	"github.com/MKhiriev/legacy-vault/internal/handler"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/server"
	"github.com/MKhiriev/legacy-vault/internal/service"
	"github.com/MKhiriev/legacy-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("legacy-vault-validator")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("version", cfg.App.Version).
		Msg("received configs")

	services, err := service.NewServices(*cfg, build, log)
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

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}
