package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/repository/mongodb"
	"todo-list/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLog := logging.NewDefault("error")
		errLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logging.NewDefault(cfg.Logging.Level)

	// Connect to the database before accepting any traffic
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	repo, err := mongodb.New(connectCtx, cfg.Database.URI, cfg.Database.Name, cfg.Database.QueryTimeout)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("database", cfg.Database.Name).Msg("connected to database")

	apiInstance := api.New(repo)
	srv := server.New(apiInstance, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.ListenAddress())
	}()
	log.Info().Str("addr", cfg.ListenAddress()).Msg("server listening")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()
	if err := repo.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("failed to close database connection")
	}
}
