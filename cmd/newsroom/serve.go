package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/newsroom/internal/handler"
	"github.com/deppfellow/newsroom/internal/repository"
	"github.com/deppfellow/newsroom/internal/router"
	"github.com/deppfellow/newsroom/internal/server"
	"github.com/deppfellow/newsroom/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return err
	}

	repos, err := repository.NewRepositories(ctx, srv)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return err
	}

	services, err := service.NewServices(srv, repos)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
		_ = srv.Shutdown(context.Background())
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-serveErr; err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
