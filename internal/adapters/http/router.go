package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/adapters/presenter"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/config"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/ports"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/infrastructure/spreadsheet"
)

const maxJSONBodyBytes = 1 << 20

type Router struct {
	cfg       config.Config
	predictor ports.PricePredictor
	describer ports.ModelDescriber
	validator *requestValidator
	sessions  sessions.Store
	prices    presenter.PriceFormatter
}

func NewRouter(
	cfg config.Config,
	predictor ports.PricePredictor,
	describer ports.ModelDescriber,
) (*Router, error) {
	validator, err := newRequestValidator()
	if err != nil {
		return nil, err
	}
	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	return &Router{
		cfg:       cfg,
		predictor: predictor,
		describer: describer,
		validator: validator,
		sessions:  store,
		prices:    presenter.NewPriceFormatter(cfg.DisplayCurrencySymbol),
	}, nil
}

func (rt *Router) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /v1/schema", rt.getSchema)
	api.HandleFunc("POST /v1/predictions", rt.createPrediction)
	api.HandleFunc("POST /v1/predictions/batch", rt.createBatchPrediction)

	var apiHandler http.Handler = rt.validator.middleware(api)
	apiHandler = backpressureMiddleware(apiHandler, rt.cfg.APIMaxInFlight, rt.cfg.APIQueueWait)
	apiHandler = rateLimitMiddleware(apiHandler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", rt.healthz)
	mux.HandleFunc("GET /openapi.yaml", serveOpenAPIDocument)
	mux.Handle("/v1/", apiHandler)

	mux.HandleFunc("GET /{$}", rt.showForm)
	mux.HandleFunc("POST /{$}", rt.showForm)
	mux.HandleFunc("POST /select/ram", rt.selectRam)
	mux.HandleFunc("POST /select/inches", rt.selectInches)
	mux.HandleFunc("POST /theme", rt.selectTheme)
	mux.HandleFunc("POST /predict", rt.predictFromForm)

	return requestIDMiddleware(accessLogMiddleware(mux))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type schemaResponse struct {
	Model    domain.ModelInfo     `json:"model"`
	Features domain.FeatureSchema `json:"features"`
	Catalog  domain.Catalog       `json:"catalog"`
}

func (rt *Router) getSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schemaResponse{
		Model:    rt.describer.ModelInfo(),
		Features: rt.describer.Schema(),
		Catalog:  rt.describer.Catalog(),
	})
}

type predictionResponse struct {
	*domain.Prediction
	DisplayPrice string `json:"display_price"`
}

func (rt *Router) createPrediction(w http.ResponseWriter, r *http.Request) {
	var spec domain.SpecificationRecord
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(&spec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	prediction, err := rt.predictor.Predict(r.Context(), spec)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if prediction.RequestID == "" {
		prediction.RequestID = requestIDFromContext(r.Context())
	}

	writeJSON(w, http.StatusOK, predictionResponse{
		Prediction:   prediction,
		DisplayPrice: rt.prices.Format(prediction.Price),
	})
}

type batchResponse struct {
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []batchRowResult `json:"results"`
}

type batchRowResult struct {
	Row        int                 `json:"row"`
	Prediction *predictionResponse `json:"prediction,omitempty"`
	Error      string              `json:"error,omitempty"`
	ErrorKind  string              `json:"error_kind,omitempty"`
}

func (rt *Router) createBatchPrediction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.BatchMaxUploadMB<<20)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	rows, err := spreadsheet.Read(fileHeader.Filename, file, rt.cfg.BatchMaxRows)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
			status = http.StatusUnsupportedMediaType
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, rt.runBatch(r, rows))
}

// runBatch predicts the readable rows and reports every row under its
// spreadsheet line number.
func (rt *Router) runBatch(r *http.Request, rows []spreadsheet.Row) batchResponse {
	specs := make([]domain.SpecificationRecord, 0, len(rows))
	lines := make([]int, 0, len(rows))
	results := make([]domain.BatchResult, len(rows))
	pending := make([]int, 0, len(rows))

	for i, row := range rows {
		if row.Err != nil {
			results[i] = domain.BatchResult{
				Row:       row.Line,
				Error:     row.Err.Error(),
				ErrorKind: domain.KindName(row.Err),
			}
			continue
		}
		specs = append(specs, row.Spec)
		lines = append(lines, row.Line)
		pending = append(pending, i)
	}

	for j, result := range rt.predictor.PredictBatch(r.Context(), specs) {
		result.Row = lines[j]
		results[pending[j]] = result
	}

	resp := batchResponse{Results: make([]batchRowResult, len(results))}
	for i, result := range results {
		row := batchRowResult{Row: result.Row, Error: result.Error, ErrorKind: result.ErrorKind}
		if result.Error != "" {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
		if result.Prediction != nil {
			row.Prediction = &predictionResponse{
				Prediction:   result.Prediction,
				DisplayPrice: rt.prices.Format(result.Prediction.Price),
			}
		}
		resp.Results[i] = row
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
