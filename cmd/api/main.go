package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/adapters/http"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/bootstrap"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/config"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/observability/logging"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/observability/metrics"
)

const serviceName = "laptop-price-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_error", "error", err.Error())
		os.Exit(1)
	}
	logger := logging.Setup(serviceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverMetrics := metrics.NewHTTPServerMetrics(serviceName)

	app, err := bootstrap.New(ctx, cfg, serverMetrics)
	if err != nil {
		logger.Error("bootstrap_error", "error", err.Error())
		os.Exit(1)
	}

	router, err := httpadapter.NewRouter(cfg, app.PredictUC, app.PredictUC)
	if err != nil {
		logger.Error("router_error", "error", err.Error())
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      serverMetrics.Middleware(router.Handler()),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           serverMetrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics_listening", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics_server_error", "error", err.Error())
		}
	}()

	go func() {
		logger.Info("api_listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api_server_error", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api_shutdown_error", "error", err.Error())
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics_shutdown_error", "error", err.Error())
	}
}
