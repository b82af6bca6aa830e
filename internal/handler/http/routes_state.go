package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/service"
	"github.com/MKhiriev/renglo-api/internal/utils"
	"github.com/MKhiriev/renglo-api/models"
)

const statePrefix = "/_state"

// stateRoutes exposes read-only lookups of named state values.
type stateRoutes struct {
	service service.StateService
}

// NewStateRoutes returns the /_state route group backed by stateService.
func NewStateRoutes(stateService service.StateService) RouteGroup {
	return &stateRoutes{service: stateService}
}

func (s *stateRoutes) Prefix() string {
	return statePrefix
}

func (s *stateRoutes) Register(r chi.Router) {
	r.Get("/{name}", s.getState)
	r.Get("/{name}/{v}", s.getStateVersion)
}

// getState serves GET /_state/{name}?v=<version>. A missing v selects the
// latest version.
func (s *stateRoutes) getState(w http.ResponseWriter, r *http.Request) {
	version := r.URL.Query().Get("v")
	if version == "" {
		version = models.LastVersion
	}

	s.writeState(w, r, chi.URLParam(r, "name"), version)
}

// getStateVersion serves GET /_state/{name}/{v}.
func (s *stateRoutes) getStateVersion(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, r, chi.URLParam(r, "name"), chi.URLParam(r, "v"))
}

func (s *stateRoutes) writeState(w http.ResponseWriter, r *http.Request, name, version string) {
	log := logger.FromRequest(r)

	state, err := s.service.GetState(r.Context(), name, version)
	if err != nil {
		log.Err(err).Str("name", name).Str("version", version).Msg("error getting state")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, state, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing state response")
	}
}
