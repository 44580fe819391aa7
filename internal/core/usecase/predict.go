package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/encoding"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/ports"
)

type PredictPriceUseCase struct {
	encoder  ports.FeatureEncoder
	model    ports.PriceModel
	catalog  domain.Catalog
	recorder ports.PredictionRecorder
	newID    func() string
}

func NewPredictPriceUseCase(
	encoder ports.FeatureEncoder,
	model ports.PriceModel,
	catalog domain.Catalog,
) *PredictPriceUseCase {
	return &PredictPriceUseCase{
		encoder: encoder,
		model:   model,
		catalog: catalog,
		newID:   uuid.NewString,
	}
}

func (uc *PredictPriceUseCase) WithRecorder(recorder ports.PredictionRecorder) *PredictPriceUseCase {
	uc.recorder = recorder
	return uc
}

// VerifySchema compares the encoder's column contract with the one the
// loaded model declares.
func (uc *PredictPriceUseCase) VerifySchema() error {
	if err := uc.encoder.Schema().Compare(uc.model.Schema()); err != nil {
		return domain.WrapError(domain.ErrSchemaMismatch, "verify model schema", err)
	}
	return nil
}

func (uc *PredictPriceUseCase) Predict(ctx context.Context, spec domain.SpecificationRecord) (*domain.Prediction, error) {
	// Checked before encoding so the model is never reached without both selections.
	if err := encoding.CheckSelections(spec); err != nil {
		uc.recordEncodeFailure(err)
		return nil, err
	}

	row, err := uc.encoder.Encode(spec)
	if err != nil {
		uc.recordEncodeFailure(err)
		return nil, err
	}

	start := time.Now()
	price, err := uc.model.Predict(ctx, row)
	duration := time.Since(start)
	if err != nil {
		if !domain.IsKind(err, domain.ErrSchemaMismatch) && !domain.IsKind(err, domain.ErrTemporary) &&
			!domain.IsKind(err, domain.ErrPrediction) {
			err = domain.WrapError(domain.ErrPrediction, "predict price", err)
		}
		uc.recordPrediction(domain.KindName(err), 0, duration)
		return nil, err
	}
	uc.recordPrediction("success", price, duration)

	return &domain.Prediction{
		RequestID: uc.newID(),
		Price:     price,
		Features:  row,
		Model:     uc.model.Info(),
	}, nil
}

func (uc *PredictPriceUseCase) Catalog() domain.Catalog { return uc.catalog }

func (uc *PredictPriceUseCase) Schema() domain.FeatureSchema { return uc.encoder.Schema() }

func (uc *PredictPriceUseCase) ModelInfo() domain.ModelInfo { return uc.model.Info() }

func (uc *PredictPriceUseCase) recordPrediction(status string, price float64, duration time.Duration) {
	if uc.recorder != nil {
		uc.recorder.RecordPrediction(status, price, duration)
	}
}

func (uc *PredictPriceUseCase) recordEncodeFailure(err error) {
	if uc.recorder != nil {
		uc.recorder.RecordEncodeFailure(domain.KindName(err))
	}
}
