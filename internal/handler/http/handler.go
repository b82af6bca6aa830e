package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/renglo-api/internal/config"
	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/service"
	"github.com/MKhiriev/renglo-api/internal/utils"
)

const defaultFrontendURL = "https://your-frontend-url.com"

// Options carries everything the router needs besides the services.
type Options struct {
	// Settings are the allow-listed configuration keys; FE_BASE_URL is used
	// by the not-found redirect payload.
	Settings config.Settings

	// StaticDir is where GET / looks for index.html.
	StaticDir string

	// RequestTimeout cancels the request context after the given duration.
	// Zero disables the timeout.
	RequestTimeout time.Duration

	// CORS is the policy chosen for the deployment environment.
	CORS cors.Options

	// RouteGroups are mounted after the utility routes.
	RouteGroups []RouteGroup
}

type Handler struct {
	services *service.Services
	options  Options
	traceIDs *utils.UUIDGenerator
	router   *chi.Mux

	logger *logger.Logger
}

func NewHandler(services *service.Services, options Options, logger *logger.Logger) *Handler {
	logger.Info().Int("route_groups", len(options.RouteGroups)).Msg("http handler created")
	return &Handler{
		services: services,
		options:  options,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// frontendURL is the location advertised by the not-found handler.
func (h *Handler) frontendURL() string {
	if h.options.Settings.FEBaseURL == "" {
		return defaultFrontendURL
	}
	return h.options.Settings.FEBaseURL
}
