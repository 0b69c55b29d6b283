package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackielii/navshell"
	"github.com/jackielii/navshell/chirouter"
	"github.com/jackielii/navshell/site"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
	bindFlags(cmd.Flags())
	return cmd
}

// newHandler builds the site behind the configured router. A nil registry
// disables metrics.
func newHandler(cfg Config, logger *slog.Logger, reg *prometheus.Registry) (http.Handler, error) {
	opts := []navshell.Option{
		navshell.WithLogger(logger),
		navshell.WithErrorHandler(errorHandler(logger)),
	}
	if reg != nil {
		opts = append(opts, navshell.WithMiddlewares(navshell.Metrics(reg)))
	}
	shell, err := site.NewShell(opts...)
	if err != nil {
		return nil, fmt.Errorf("build shell: %w", err)
	}

	var metrics http.Handler
	if reg != nil && cfg.MetricsPath != "" {
		metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	switch cfg.Router {
	case "std":
		mux := http.NewServeMux()
		if metrics != nil {
			mux.Handle("GET "+cfg.MetricsPath, metrics)
		}
		router := navshell.NewRouter(mux)
		shell.Mount(router)
		return router, nil
	default:
		r := chi.NewRouter()
		r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.StripSlashes)
		if metrics != nil {
			r.Method(http.MethodGet, cfg.MetricsPath, metrics)
		}
		shell.Mount(chirouter.NewChiRouter(r))
		return r, nil
	}
}

func serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	var reg *prometheus.Registry
	if cfg.MetricsPath != "" {
		reg = prometheus.NewRegistry()
	}
	handler, err := newHandler(cfg, logger, reg)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:     cfg.Addr,
		Handler:  handler,
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", cfg.Addr), slog.String("router", cfg.Router))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func errorHandler(logger *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
