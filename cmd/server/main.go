// Command server serves word selections for the reading-speed game from a
// dataset produced by the trainer.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wordpace/internal/app"
	"wordpace/internal/config"
	"wordpace/internal/selector"
	"wordpace/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	words, err := app.DatasetLoader(cfg.Dataset).Load(ctx)
	if err != nil {
		logger.Error("load dataset",
			slog.String("source", cfg.Dataset.Source),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("dataset loaded", slog.String("source", cfg.Dataset.Source), slog.Int("words", words.Len()))
	if words.Len() == 0 {
		logger.Warn("dataset is empty, game requests will return 503")
	}

	server := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: rest.NewRouter(rest.RouterDeps{
			Words:    words,
			Selector: selector.New(nil),
			CORS:     cfg.CORS,
			Version:  app.Version,
			Logger:   logger,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
