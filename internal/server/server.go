package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/renglo-api/internal/config"
	"github.com/MKhiriev/renglo-api/internal/logger"
)

// NewServer picks the runtime for the deployment environment: the Lambda
// adapter when AWS_LAMBDA_FUNCTION_NAME is set, a local HTTP server
// otherwise. onShutdown runs once after the server stopped.
func NewServer(router *chi.Mux, cfg *config.StructuredConfig, onShutdown func(), logger *logger.Logger) (Server, error) {
	if router == nil {
		return nil, errNoRouter
	}
	if onShutdown == nil {
		onShutdown = func() {}
	}

	if cfg.IsLambda() {
		logger.Info().Str("function", cfg.LambdaFunctionName).Msg("creating lambda server...")
		return newLambdaServer(router, onShutdown, logger), nil
	}

	logger.Info().Str("address", cfg.Server.Address).Msg("creating http server...")
	return newHTTPServer(router, cfg.Server, onShutdown, logger), nil
}
