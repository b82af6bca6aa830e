package app

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"

	"github.com/MKhiriev/renglo-api/internal/config"
)

// DevOrigins are the local front-end dev servers.
var DevOrigins = []string{
	"http://127.0.0.1:5173",
	"http://127.0.0.1:5174",
	"http://127.0.0.1:3000",
}

// AllowedOrigins returns the CORS origins for the deployment environment.
//
// On Lambda these are FE_BASE_URL (without trailing slash), APP_FE_BASE_URL
// and, only with ALLOW_DEV_ORIGINS, the dev origins. Locally only the dev
// origins are allowed.
func AllowedOrigins(settings config.Settings, isLambda bool) []string {
	if !isLambda {
		return append([]string(nil), DevOrigins...)
	}

	var origins []string
	if fe := strings.TrimRight(settings.FEBaseURL, "/"); fe != "" {
		origins = append(origins, fe)
	}
	if settings.AppFEBaseURL != "" {
		origins = append(origins, settings.AppFEBaseURL)
	}
	if settings.AllowDevOrigins {
		origins = append(origins, DevOrigins...)
	}
	return origins
}

// CORSOptions returns the go-chi/cors policy for the deployment environment.
func CORSOptions(settings config.Settings, isLambda bool) cors.Options {
	origins := AllowedOrigins(settings, isLambda)

	if !isLambda {
		return cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
				http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}
	}

	options := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
	// go-chi/cors treats an empty origin list as "allow all"
	if len(origins) == 0 {
		options.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}
	return options
}
