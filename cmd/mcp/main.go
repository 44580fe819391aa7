package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	mcpadapter "github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/adapters/mcp"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/bootstrap"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/config"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/observability/logging"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_error", "error", err.Error())
		os.Exit(1)
	}
	// stdout carries the MCP protocol.
	logger := logging.NewJSONLogger(os.Stderr, "laptop-price-mcp", cfg.LogLevel)
	slog.SetDefault(logger)

	app, err := bootstrap.New(context.Background(), cfg, nil)
	if err != nil {
		logger.Error("bootstrap_error", "error", err.Error())
		os.Exit(1)
	}

	s := mcpadapter.NewServer(version, app.PredictUC, app.PredictUC)
	if err := server.ServeStdio(s); err != nil {
		logger.Error("mcp_server_error", "error", err.Error())
		os.Exit(1)
	}
}
