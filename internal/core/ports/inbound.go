package ports

import (
	"context"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

// PricePredictor is the inbound contract shared by the web form, the JSON
// API, the MCP tools and the CLI.
type PricePredictor interface {
	Predict(ctx context.Context, spec domain.SpecificationRecord) (*domain.Prediction, error)
	PredictBatch(ctx context.Context, specs []domain.SpecificationRecord) []domain.BatchResult
}

// ModelDescriber exposes what the running process was configured with.
type ModelDescriber interface {
	Catalog() domain.Catalog
	Schema() domain.FeatureSchema
	ModelInfo() domain.ModelInfo
}
