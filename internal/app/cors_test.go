package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/cors"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/renglo-api/internal/config"
)

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		name     string
		settings config.Settings
		isLambda bool
		want     []string
	}{
		{
			name:     "local always uses dev origins",
			settings: config.Settings{FEBaseURL: "https://app.renglo.com"},
			want:     DevOrigins,
		},
		{
			name:     "lambda without anything configured",
			isLambda: true,
			want:     nil,
		},
		{
			name:     "lambda trims trailing slash of FE_BASE_URL",
			settings: config.Settings{FEBaseURL: "https://app.renglo.com/", AppFEBaseURL: "https://console.renglo.com"},
			isLambda: true,
			want:     []string{"https://app.renglo.com", "https://console.renglo.com"},
		},
		{
			name:     "lambda with dev origins",
			settings: config.Settings{FEBaseURL: "https://app.renglo.com", AllowDevOrigins: true},
			isLambda: true,
			want:     append([]string{"https://app.renglo.com"}, DevOrigins...),
		},
		{
			name:     "lambda with only dev origins",
			settings: config.Settings{AllowDevOrigins: true},
			isLambda: true,
			want:     DevOrigins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedOrigins(tt.settings, tt.isLambda))
		})
	}
}

func TestAllowedOrigins_DoesNotAliasDevOrigins(t *testing.T) {
	origins := AllowedOrigins(config.Settings{}, false)
	origins[0] = "http://mutated"

	assert.Equal(t, "http://127.0.0.1:5173", DevOrigins[0])
}

// preflight runs a CORS preflight for origin through the policy and returns
// the response headers.
func preflight(options cors.Options, origin string) http.Header {
	h := cors.Handler(options)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/_state/app", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec.Header()
}

func TestCORSOptions(t *testing.T) {
	const fe = "https://app.renglo.com"
	lambda := config.Settings{FEBaseURL: fe}

	t.Run("lambda allows configured front end without credentials", func(t *testing.T) {
		headers := preflight(CORSOptions(lambda, true), fe)

		assert.Equal(t, fe, headers.Get("Access-Control-Allow-Origin"))
		assert.Empty(t, headers.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("lambda rejects dev origins unless enabled", func(t *testing.T) {
		for _, origin := range DevOrigins {
			assert.Empty(t, preflight(CORSOptions(lambda, true), origin).Get("Access-Control-Allow-Origin"), origin)
		}

		enabled := lambda
		enabled.AllowDevOrigins = true
		for _, origin := range DevOrigins {
			assert.Equal(t, origin, preflight(CORSOptions(enabled, true), origin).Get("Access-Control-Allow-Origin"), origin)
		}
	})

	t.Run("lambda with no origins rejects everyone", func(t *testing.T) {
		headers := preflight(CORSOptions(config.Settings{}, true), "https://anyone.example.com")

		assert.Empty(t, headers.Get("Access-Control-Allow-Origin"))
	})

	t.Run("local allows dev origins with credentials", func(t *testing.T) {
		headers := preflight(CORSOptions(lambda, false), DevOrigins[1])

		assert.Equal(t, DevOrigins[1], headers.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", headers.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("local rejects the production front end", func(t *testing.T) {
		assert.Empty(t, preflight(CORSOptions(lambda, false), fe).Get("Access-Control-Allow-Origin"))
	})
}
