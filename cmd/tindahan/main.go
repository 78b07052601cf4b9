package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jdelacruz/tindahan/internal/config"
	"github.com/jdelacruz/tindahan/internal/kv"
	"github.com/jdelacruz/tindahan/internal/logging"
	"github.com/jdelacruz/tindahan/internal/store"
	"github.com/jdelacruz/tindahan/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	gateway, err := kv.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		return
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	st, err := store.Open(context.Background(), gateway, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		return
	}

	server := web.NewServer(st, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe(cfg.ListenAddr, cfg.ReadTimeout, cfg.WriteTimeout)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("failed to shut down server", "error", err)
		}
		<-errCh
	}

	// Final save so durable state matches memory at exit.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := st.Close(ctx); err != nil {
		logger.Error("final save failed", "error", err)
	}
}
