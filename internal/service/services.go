package service

import (
	"github.com/jellydator/ttlcache/v3"

	"github.com/MKhiriev/renglo-api/internal/config"
	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/store"
)

type Services struct {
	AuthService  AuthService
	StateService StateService
}

// NewServices builds the service layer. cache is the application cache; the
// auth service keeps Cognito signing keys in it.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, cache *ttlcache.Cache[string, any], logger *logger.Logger) *Services {
	stateService := NewStateValidationService().Wrap(NewStateService(storages.StateRepository, logger))

	return &Services{
		AuthService:  NewAuthService(cfg.Settings, cache, logger),
		StateService: stateService,
	}
}
