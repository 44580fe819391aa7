package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

type predictorFake struct {
	price float64
	err   error
	last  domain.SpecificationRecord
}

func (f *predictorFake) Predict(_ context.Context, spec domain.SpecificationRecord) (*domain.Prediction, error) {
	f.last = spec
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Prediction{RequestID: "pred-1", Price: f.price}, nil
}

func (f *predictorFake) PredictBatch(context.Context, []domain.SpecificationRecord) []domain.BatchResult {
	return nil
}

func (f *predictorFake) Catalog() domain.Catalog { return domain.DefaultCatalog() }

func (f *predictorFake) Schema() domain.FeatureSchema { return domain.RowSchema }

func (f *predictorFake) ModelInfo() domain.ModelInfo {
	return domain.ModelInfo{Name: "laptop-price", Version: "2024.1", Backend: "artifact"}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = ToolPredict
	req.Params.Arguments = args
	return req
}

func validArguments() map[string]any {
	return map[string]any{
		"company":   "Dell",
		"type_name": "Ultrabook",
		"cpu_brand": "Intel Core i7",
		"ram":       float64(16),
		"memory":    "512GB SSD",
		"gpu_brand": "Intel",
		"op_sys":    "Windows 11",
		"weight":    1.3,
		"inches":    13.3,
		"touch":     "No",
		"ips":       "Yes",
		"pixels":    "1920x1080",
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestPredictToolReturnsPrediction(t *testing.T) {
	fake := &predictorFake{price: 65000}
	h := NewHandlers(fake, fake)

	res, err := h.Predict(context.Background(), callRequest(validArguments()))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var prediction domain.Prediction
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &prediction))
	assert.Equal(t, 65000.0, prediction.Price)

	require.NotNil(t, fake.last.Ram)
	require.NotNil(t, fake.last.Inches)
	assert.Equal(t, 16, *fake.last.Ram)
	assert.Equal(t, 13.3, *fake.last.Inches)
	assert.Equal(t, "Yes", fake.last.IPS)
}

func TestPredictToolAppliesDefaults(t *testing.T) {
	fake := &predictorFake{price: 1}
	h := NewHandlers(fake, fake)

	args := validArguments()
	delete(args, "weight")
	delete(args, "touch")
	res, err := h.Predict(context.Background(), callRequest(args))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, 1.5, fake.last.Weight)
	assert.Equal(t, "No", fake.last.Touch)
}

func TestPredictToolRejectsMissingOrFractionalRam(t *testing.T) {
	fake := &predictorFake{}
	h := NewHandlers(fake, fake)

	args := validArguments()
	delete(args, "ram")
	res, err := h.Predict(context.Background(), callRequest(args))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	args = validArguments()
	args["ram"] = 7.5
	res, err = h.Predict(context.Background(), callRequest(args))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "whole number")
}

func TestPredictToolReportsFailure(t *testing.T) {
	fake := &predictorFake{err: domain.WrapError(domain.ErrParsing, "parse storage", errors.New("storage kind is missing"))}
	h := NewHandlers(fake, fake)

	res, err := h.Predict(context.Background(), callRequest(validArguments()))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Prediction failed:")
}

func TestDescribeTool(t *testing.T) {
	fake := &predictorFake{}
	h := NewHandlers(fake, fake)

	res, err := h.Describe(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)

	var body struct {
		Model    domain.ModelInfo     `json:"model"`
		Features []domain.FeatureSpec `json:"features"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Equal(t, "2024.1", body.Model.Version)
	assert.Len(t, body.Features, len(domain.RowSchema))
}
