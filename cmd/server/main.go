package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/config"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/logging"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/metrics"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/server"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage/memory"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage/postgres"
)

var routes = []string{
	"POST   /api/auth/signup",
	"POST   /api/auth/login",
	"POST   /api/bookings/book",
	"GET    /api/bookings/my-bookings",
	"GET    /api/bookings/booking/{id}",
	"PUT    /api/bookings/booking/{id}",
	"DELETE /api/bookings/booking/{id}",
}

func main() {
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(cfg.Logging, "cafe-api", cfg.Environment)
	if !envLoaded {
		logger.Info().Msg("no .env file found; relying on existing environment")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init storage")
	}
	defer store.Close()

	srv := server.New(cfg, store, logger, metrics.New())

	go func() {
		logger.Info().Str("addr", srv.Addr()).Strs("routes", routes).Msg("booking API listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

func openStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) (storage.Store, error) {
	if cfg.StorageDriver == config.DriverMemory {
		logger.Warn().Msg("using in-memory storage; data is lost on restart")
		return memory.New(), nil
	}
	pg, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return nil, err
	}
	return pg, nil
}
