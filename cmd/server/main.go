package main // Entry point package

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv" // .env loader

	"github.com/iliyamo/ai-service/internal/config"  // Internal config loader
	"github.com/iliyamo/ai-service/internal/logging" // zerolog setup
	"github.com/iliyamo/ai-service/internal/server"  // Echo assembly and lifecycle
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	envErr := godotenv.Load()

	cfg := config.Load() // Load environment config
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.IsProduction())

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn().Err(envErr).Msg("could not read .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := server.New(cfg, log)
	if err := server.Run(ctx, e, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
