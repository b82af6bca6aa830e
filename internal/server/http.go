package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/renglo-api/internal/config"
	"github.com/MKhiriev/renglo-api/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server     *http.Server
	onShutdown func()
	shutdown   sync.Once

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, onShutdown func(), logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		onShutdown: onShutdown,
		logger:     logger,
	}
}

// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives or the listener
// fails, then shuts down gracefully.
func (h *httpServer) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("address", h.server.Addr).Msg("launching HTTP server")
		serveErr <- h.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		h.logger.Info().Msg("stop signal received")
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			h.logger.Err(err).Msg("HTTP server ListenAndServe")
		}
	}

	h.Shutdown()
	h.logger.Info().Msg("server shutdown gracefully")
}

// Shutdown waits up to shutdownTimeout for in-flight requests and then runs
// the shutdown hook. Repeated calls are no-ops.
func (h *httpServer) Shutdown() {
	h.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(ctx); err != nil {
			h.logger.Err(err).Msg("HTTP server Shutdown")
		}
		h.onShutdown()
	})
}
