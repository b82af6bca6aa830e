package main

import (
	"context"
	"errors"
	"os"

	"github.com/MKhiriev/renglo-api/internal/app"
	"github.com/MKhiriev/renglo-api/internal/config"
	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/server"
	"github.com/MKhiriev/renglo-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("renglo-api")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion).
		Str("date", buildInfo.BuildDate).
		Str("commit", buildInfo.BuildCommit).
		Msg("build info")

	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	cfg := config.GetStructuredConfig(flags)
	for _, warning := range cfg.Warnings() {
		if errors.Is(warning, config.ErrConfigFileNotFound) {
			log.Info().Err(warning).Msg("using environment configuration only")
			continue
		}
		log.Warn().Err(warning).Msg("configuration warning")
	}

	if err = logger.SetLevel(cfg.Server.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	application, err := app.New(context.Background(), cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	srv, err := server.NewServer(application.Router, cfg, func() {
		if err := application.Close(); err != nil {
			log.Err(err).Msg("error closing application")
		}
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
