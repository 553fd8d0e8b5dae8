// Package api assembles the HTTP server exposing synced regulation data
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	v1 "github.com/ttbdata/ecfr-sync/internal/api/v1"
	"github.com/ttbdata/ecfr-sync/internal/service"
	"github.com/ttbdata/ecfr-sync/internal/telemetry"
)

const (
	defaultRequestTimeout    = 30 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

// NewServer builds the HTTP server with all routes and middleware wired
func NewServer(address string, svc *service.Service, metrics *telemetry.Metrics, logger *zap.Logger) *http.Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if metrics != nil {
		r.Handle("/metrics", metrics.Handler())
	}
	r.Mount("/api/v1", v1.Router(svc, logger))

	return &http.Server{
		Addr:              address,
		Handler:           r,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}
}

// LoggingMiddleware logs one line per request with status and latency
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("Handled request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())))
		})
	}
}
