package ports

import (
	"context"
	"time"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

// FeatureEncoder maps a specification record to the model's feature row.
type FeatureEncoder interface {
	Encode(spec domain.SpecificationRecord) (domain.FeatureRow, error)
	Schema() domain.FeatureSchema
}

// PriceModel is a loaded, read-only regression model. Implementations must
// be safe for concurrent use.
type PriceModel interface {
	Predict(ctx context.Context, row domain.FeatureRow) (float64, error)
	Schema() domain.FeatureSchema
	Info() domain.ModelInfo
}

// PredictionRecorder receives prediction outcomes for observability.
type PredictionRecorder interface {
	RecordPrediction(status string, price float64, duration time.Duration)
	RecordEncodeFailure(kind string)
}
