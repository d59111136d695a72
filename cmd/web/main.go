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
	"github.com/rs/zerolog/log"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/config"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/logging"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/metrics"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/server"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadWeb()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(cfg.Logging, "cafe-web", cfg.Environment)

	client := web.NewBookingClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout})
	site, err := web.NewSite(web.DefaultContent(), client)
	if err != nil {
		logger.Fatal().Err(err).Msg("init site")
	}

	srv := server.NewPresentation(cfg, site, logger, metrics.New())

	go func() {
		logger.Info().Str("addr", srv.Addr()).Str("api", cfg.APIBaseURL).Msg("café site listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}
