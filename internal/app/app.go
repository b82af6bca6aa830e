package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jellydator/ttlcache/v3"

	"github.com/MKhiriev/renglo-api/internal/config"
	handlerhttp "github.com/MKhiriev/renglo-api/internal/handler/http"
	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/service"
	"github.com/MKhiriev/renglo-api/internal/store"
)

const defaultCacheTTL = time.Hour

// App is a ready-to-serve application. It is built once per process (or
// Lambda cold start) and not mutated afterwards.
type App struct {
	Config *config.StructuredConfig

	// ControllerConfig is the flat key/value view of Config handed to
	// controllers, including IS_LAMBDA.
	ControllerConfig map[string]any

	Cache    *ttlcache.Cache[string, any]
	IsLambda bool
	Router   *chi.Mux

	storages *store.Storages
	logger   *logger.Logger
}

// New assembles the application.
//
// A nil cfg is loaded from the config file and the environment. A nil
// storages is opened from cfg; the App then owns it and releases it in
// [App.Close].
func New(ctx context.Context, cfg *config.StructuredConfig, storages *store.Storages, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.GetStructuredConfig(nil)
		for _, warning := range cfg.Warnings() {
			logger.Warn().Err(warning).Msg("configuration warning")
		}
	}

	controllerConfig, err := cfg.ControllerConfig()
	if err != nil {
		return nil, fmt.Errorf("error building controller config: %w", err)
	}

	ownStorages := storages == nil
	if ownStorages {
		storages, err = store.NewStorages(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating storages: %w", err)
		}
	}

	cache := ttlcache.New[string, any](ttlcache.WithTTL[string, any](defaultCacheTTL))
	go cache.Start()

	a := &App{
		Config:           cfg,
		ControllerConfig: controllerConfig,
		Cache:            cache,
		IsLambda:         cfg.IsLambda(),
		logger:           logger,
	}
	if ownStorages {
		a.storages = storages
	}

	corsOptions := CORSOptions(cfg.Settings, a.IsLambda)
	a.logCORS(corsOptions)

	services := service.NewServices(storages, cfg, cache, logger)

	a.Router = handlerhttp.NewHandler(services, handlerhttp.Options{
		Settings:       cfg.Settings,
		StaticDir:      cfg.Server.StaticDir,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORS:           corsOptions,
		RouteGroups: []handlerhttp.RouteGroup{
			handlerhttp.NewStateRoutes(services.StateService),
		},
	}, logger).Init()

	logger.Info().Bool("is_lambda", a.IsLambda).Int("config_keys", len(controllerConfig)).Msg("application created")
	return a, nil
}

// Close stops the cache janitor and releases storages the App opened itself.
func (a *App) Close() error {
	a.Cache.Stop()

	if a.storages != nil {
		return a.storages.Close()
	}
	return nil
}

func (a *App) logCORS(options cors.Options) {
	if !a.IsLambda {
		a.logger.Info().Strs("origins", options.AllowedOrigins).Msg("running on local environment")
		return
	}

	settings := a.Config.Settings
	a.logger.Info().Msg("running on lambda environment")
	a.logger.Info().Str("base_url", orNotSet(settings.BaseURL)).Msg("BASE_URL")
	a.logger.Info().Str("fe_base_url", orNotSet(settings.FEBaseURL)).Msg("FE_BASE_URL")
	if settings.AppFEBaseURL != "" {
		a.logger.Info().Str("app_fe_base_url", settings.AppFEBaseURL).Msg("APP_FE_BASE_URL")
	}
	if settings.AllowDevOrigins {
		a.logger.Warn().Msg("development origins enabled, not recommended for production")
	}
	a.logger.Info().Strs("origins", options.AllowedOrigins).Msg("cors origins configured")
}

func orNotSet(value string) string {
	if value == "" {
		return "NOT SET"
	}
	return value
}
