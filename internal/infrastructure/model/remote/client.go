// Package remote invokes a model hosted behind an HTTP inference server.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/infrastructure/resilience"
)

const backendName = "remote"

type Options struct {
	HTTPClient         *http.Client
	ResilienceExecutor *resilience.Executor
}

// Client is read-only after New and safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor

	schema domain.FeatureSchema
	info   domain.ModelInfo
}

type schemaResponse struct {
	Name     string               `json:"name"`
	Version  string               `json:"version"`
	Features []domain.FeatureSpec `json:"features"`
}

type predictRequest struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type predictResponse struct {
	Predictions []float64 `json:"predictions"`
}

// New connects to the inference server and loads its declared schema once.
func New(ctx context.Context, baseURL string, options Options) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("remote model url is required")
	}
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		executor:   options.ResilienceExecutor,
	}

	var schema schemaResponse
	if err := c.getJSON(ctx, "/v1/schema", &schema, "schema"); err != nil {
		return nil, fmt.Errorf("load remote schema: %w", err)
	}
	if len(schema.Features) == 0 {
		return nil, errors.New("load remote schema: server declared no features")
	}
	c.schema = schema.Features
	c.info = domain.ModelInfo{Name: schema.Name, Version: schema.Version, Backend: backendName}
	return c, nil
}

func (c *Client) Schema() domain.FeatureSchema { return c.schema }

func (c *Client) Info() domain.ModelInfo { return c.info }

func (c *Client) Predict(ctx context.Context, row domain.FeatureRow) (float64, error) {
	values := row.Values()
	req := predictRequest{
		Columns: make([]string, 0, len(values)),
		Rows:    [][]any{make([]any, 0, len(values))},
	}
	for _, v := range values {
		req.Columns = append(req.Columns, v.Name)
		req.Rows[0] = append(req.Rows[0], v.Any())
	}

	var resp predictResponse
	call := func(callCtx context.Context) error {
		return c.postJSON(callCtx, "/v1/predict", req, &resp, "predict")
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "remote.predict", call, classifyRemoteError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return 0, wrapRemoteError("remote predict", err)
	}
	if len(resp.Predictions) != 1 {
		return 0, domain.WrapError(domain.ErrPrediction, "remote predict",
			fmt.Errorf("expected 1 prediction, got %d", len(resp.Predictions)))
	}
	return resp.Predictions[0], nil
}
