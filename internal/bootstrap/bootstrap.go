package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/config"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/encoding"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/ports"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/usecase"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/infrastructure/model/artifact"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/infrastructure/model/remote"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/infrastructure/resilience"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/infrastructure/storage/localfs"
)

type App struct {
	Config    config.Config
	PredictUC *usecase.PredictPriceUseCase
}

// NewEncoder builds the encoder every entry point shares.
func NewEncoder(cfg config.Config) *encoding.Encoder {
	return encoding.New(encoding.Options{Strict: cfg.EncoderStrict, Catalog: domain.DefaultCatalog()})
}

// New loads the configured model once and refuses to start when its schema
// disagrees with the encoder. recorder may be nil.
func New(ctx context.Context, cfg config.Config, recorder ports.PredictionRecorder) (*App, error) {
	encoder := NewEncoder(cfg)

	model, err := OpenModel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	predictUC := usecase.NewPredictPriceUseCase(encoder, model, domain.DefaultCatalog())
	if recorder != nil {
		predictUC.WithRecorder(recorder)
	}
	if err := predictUC.VerifySchema(); err != nil {
		return nil, err
	}

	info := model.Info()
	slog.Info("model_loaded",
		"backend", info.Backend,
		"name", info.Name,
		"version", info.Version,
		"strict_encoder", cfg.EncoderStrict,
	)

	return &App{
		Config:    cfg,
		PredictUC: predictUC,
	}, nil
}

// OpenModel loads the configured backend without checking its schema.
func OpenModel(ctx context.Context, cfg config.Config) (ports.PriceModel, error) {
	switch cfg.ModelBackend {
	case config.BackendRemote:
		executor := resilience.NewExecutor(resilience.Config{
			CallTimeout:         cfg.ModelRemoteTimeout,
			BreakerEnabled:      cfg.ModelBreakerEnabled,
			BreakerMinRequests:  cfg.ModelBreakerMinRequests,
			BreakerFailureRatio: cfg.ModelBreakerFailureRatio,
			BreakerOpenTimeout:  cfg.ModelBreakerOpenTimeout,
		})
		client, err := remote.New(ctx, cfg.ModelRemoteURL, remote.Options{
			HTTPClient:         &http.Client{Timeout: cfg.ModelRemoteTimeout},
			ResilienceExecutor: executor,
		})
		if err != nil {
			return nil, fmt.Errorf("init remote model: %w", err)
		}
		return client, nil

	case config.BackendArtifact, "":
		store, err := localfs.New(cfg.ModelDir)
		if err != nil {
			return nil, fmt.Errorf("init model storage: %w", err)
		}
		rc, err := store.Open(ctx, cfg.ModelArtifact)
		if err != nil {
			return nil, fmt.Errorf("open model artifact: %w", err)
		}
		defer rc.Close()

		model, err := artifact.Load(rc)
		if err != nil {
			return nil, fmt.Errorf("load model artifact %s: %w", cfg.ModelArtifact, err)
		}
		return model, nil

	default:
		return nil, fmt.Errorf("unsupported model backend %q", cfg.ModelBackend)
	}
}
