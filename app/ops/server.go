// Package ops serves the operational HTTP surface: liveness, readiness,
// and Prometheus metrics, behind a per-IP rate limit.
package ops

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/aaravmaloo/blue-moon/app/shared/attr"
)

// ReadyFunc reports whether the application's dependencies are reachable.
type ReadyFunc func(ctx context.Context) error

// Server is the health/metrics HTTP listener.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer builds the ops listener. The metrics endpoint serves only the
// given registry, not the default one.
func NewServer(addr string, reg *prometheus.Registry, ready ReadyFunc, logger *slog.Logger) *Server {
	limiter := NewIPRateLimiter(rate.Limit(10), 20)

	r := chi.NewRouter()
	r.Use(RateLimitMiddleware(limiter))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := ready(req.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Ops server listening", attr.String("address", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
