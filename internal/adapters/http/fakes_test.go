package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/config"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

type predictorFake struct {
	mu    sync.Mutex
	price float64
	err   error
	calls int
	last  domain.SpecificationRecord
}

func (f *predictorFake) Predict(_ context.Context, spec domain.SpecificationRecord) (*domain.Prediction, error) {
	if !spec.HasSelections() {
		return nil, domain.WrapError(domain.ErrMissingSelection, "predict price", errors.New("ram is not selected"))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = spec
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Prediction{
		RequestID: "pred-1",
		Price:     f.price,
		Model:     domain.ModelInfo{Name: "fake", Version: "1", Backend: "artifact"},
	}, nil
}

func (f *predictorFake) PredictBatch(ctx context.Context, specs []domain.SpecificationRecord) []domain.BatchResult {
	results := make([]domain.BatchResult, 0, len(specs))
	for i, spec := range specs {
		result := domain.BatchResult{Row: i + 1}
		prediction, err := f.Predict(ctx, spec)
		if err != nil {
			result.Error = err.Error()
			result.ErrorKind = domain.KindName(err)
		} else {
			result.Prediction = prediction
		}
		results = append(results, result)
	}
	return results
}

func (f *predictorFake) Catalog() domain.Catalog { return domain.DefaultCatalog() }

func (f *predictorFake) Schema() domain.FeatureSchema { return domain.RowSchema }

func (f *predictorFake) ModelInfo() domain.ModelInfo {
	return domain.ModelInfo{Name: "fake", Version: "1", Backend: "artifact"}
}

func (f *predictorFake) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestHandler(t *testing.T, cfg config.Config, predictor *predictorFake) http.Handler {
	t.Helper()
	if cfg.DisplayCurrencySymbol == "" {
		cfg.DisplayCurrencySymbol = "₹"
	}
	if cfg.BatchMaxUploadMB == 0 {
		cfg.BatchMaxUploadMB = 1
	}
	if cfg.BatchMaxRows == 0 {
		cfg.BatchMaxRows = 100
	}
	if cfg.SessionMaxAgeSeconds == 0 {
		cfg.SessionMaxAgeSeconds = 3600
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "test-secret"
	}

	router, err := NewRouter(cfg, predictor, predictor)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return router.Handler()
}
