package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/auth"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/config"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/http/handlers"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/metrics"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/middleware"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/service"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/validate"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up the booking API: services, middleware and routes.
func New(cfg config.Config, store storage.Store, logger zerolog.Logger, m *metrics.Metrics) *Server {
	return wrap(cfg.HTTPAddress(), NewAPIHandler(cfg, store, logger, m))
}

// NewAPIHandler builds the booking API handler chain without binding a port.
func NewAPIHandler(cfg config.Config, store storage.Store, logger zerolog.Logger, m *metrics.Metrics) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	v := validate.New()

	identity := service.NewIdentity(store, hasher, tokens, v)
	bookings := service.NewBookings(store, store, v, m)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now(), store).Register(mux)
	handlers.NewAuthHandler(identity).Register(mux)
	handlers.NewBookingHandler(bookings, tokens).Register(mux)
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("/", handlers.NotFound)

	return chain(cfg.CORSOrigins, logger, m, mux)
}

// NewPresentation wraps the café site handler in the shared middleware.
func NewPresentation(cfg config.WebConfig, site http.Handler, logger zerolog.Logger, m *metrics.Metrics) *Server {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("/", site)
	return wrap(cfg.HTTPAddress(), middleware.Logging(logger, m, middleware.Recover(mux)))
}

func chain(origins []string, logger zerolog.Logger, m *metrics.Metrics, h http.Handler) http.Handler {
	return middleware.Logging(logger, m, middleware.CORS(origins, middleware.Recover(h)))
}

func wrap(addr string, handler http.Handler) *Server {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return &Server{inner: httpServer}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.inner.Addr
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
