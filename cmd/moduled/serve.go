package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"moduled/internal/config"
	"moduled/internal/engine"
	"moduled/internal/httpapi"
	"moduled/internal/metrics"
	"moduled/pkg/types"
)

const (
	shutdownTimeout = 5 * time.Second
	eventHistory    = 256
)

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, cfg, logger)
}

// serve wires the engine to the event bus, metrics and HTTP API, and blocks
// until ctx is canceled or the listener fails.
func serve(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	eng := engine.NewWithConfig(engine.Config{InitialModule: cfg.InitialModule})
	bus := engine.NewBus()
	history := engine.NewMemoryPublisher(eventHistory)
	stopForward := engine.Forward(eng, engine.Fanout{bus, history})
	defer stopForward()
	_, stopMetrics, err := metrics.Instrument(eng, nil)
	if err != nil {
		return err
	}
	defer stopMetrics()
	stopLog := eng.ModuleIDChanged.Connect(func(id types.ModuleID) {
		logger.Info().Stringer("module", id).Msg("current module changed")
	})
	defer stopLog()

	httpapi.SetLogger(logger)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetBaseContext(ctx)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, cfg.CORSMethods, cfg.CORSHeaders)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(eng, bus, history),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Stringer("module", eng.CurrentModuleID()).Msg("moduled listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}
