package main

import (
	"context"

	"github.com/MKhiriev/truvoice/internal/adapter"
	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/handler"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/metrics"
	"github.com/MKhiriev/truvoice/internal/server"
	"github.com/MKhiriev/truvoice/internal/service"
	"github.com/MKhiriev/truvoice/internal/store"
	"github.com/MKhiriev/truvoice/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("truvoice-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.Version).
		Str("date", buildInfo.Date).
		Str("commit", buildInfo.Commit).
		Msg("build info")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close(ctx)

	identityProvider, err := adapter.NewCognitoIdentityProvider(ctx, cfg.Cognito, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity provider")
	}
	textGenerator, err := adapter.NewGeminiTextGenerator(cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating text generator")
	}

	services, err := service.NewServices(storages, service.Adapters{
		IdentityProvider: identityProvider,
		TextGenerator:    textGenerator,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metrics.New(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
