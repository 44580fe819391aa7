package usecase

import (
	"context"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

// PredictBatch predicts every record independently; a failing row does not
// stop the others. Rows are numbered from 1.
func (uc *PredictPriceUseCase) PredictBatch(ctx context.Context, specs []domain.SpecificationRecord) []domain.BatchResult {
	results := make([]domain.BatchResult, 0, len(specs))
	for i, spec := range specs {
		result := domain.BatchResult{Row: i + 1}
		if err := ctx.Err(); err != nil {
			result.Error = err.Error()
			result.ErrorKind = domain.KindName(domain.WrapError(domain.ErrTemporary, "predict batch", err))
			results = append(results, result)
			continue
		}

		prediction, err := uc.Predict(ctx, spec)
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
