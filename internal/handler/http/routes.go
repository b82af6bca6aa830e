package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router. Middlewares run in the order recovery, tracing,
// logging, CORS, timeout.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(h.options.CORS))
	if h.options.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.options.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/ping", h.ping)
		r.Get("/timex", h.getTimex)
		r.Post("/message", h.message)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/time", h.getTime)
	})

	for _, group := range h.options.RouteGroups {
		router.Route(group.Prefix(), group.Register)
		h.logger.Debug().Str("prefix", group.Prefix()).Msg("route group registered")
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	h.router = router
	return router
}
