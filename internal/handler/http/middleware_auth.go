package http

import (
	"net/http"

	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/utils"
)

// auth is an HTTP middleware that enforces Cognito bearer authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.ParseToken] and stores the resulting
// [models.Identity] in the request context under [utils.IdentityCtxKey].
//
// Every failure is answered with 401 and a JSON error body, including a
// server without Cognito configuration.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeServiceError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeServiceError(w, err)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeServiceError(w, err)
			return
		}

		log.Debug().Str("sub", identity.Subject).Str("username", identity.Username).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
