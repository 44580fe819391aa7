package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry
	service  string

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	predictionsTotal   *prometheus.CounterVec
	predictionDuration *prometheus.HistogramVec
	priceEstimate      prometheus.Histogram
	encodeFailures     *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laptop_price",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "laptop_price",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "laptop_price",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	predictionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laptop_price",
			Name:      "predictions_total",
			Help:      "Model invocations by outcome.",
		},
		[]string{"service", "status"},
	)
	predictionDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "laptop_price",
			Name:      "prediction_duration_seconds",
			Help:      "Model invocation duration in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"service", "status"},
	)
	priceEstimate := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   "laptop_price",
			Name:        "estimate",
			Help:        "Distribution of successful price estimates.",
			Buckets:     prometheus.ExponentialBuckets(10000, 1.5, 12),
			ConstLabels: prometheus.Labels{"service": service},
		},
	)
	encodeFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laptop_price",
			Name:      "encode_failures_total",
			Help:      "Requests rejected before reaching the model, by error kind.",
		},
		[]string{"service", "kind"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		predictionsTotal,
		predictionDuration,
		priceEstimate,
		encodeFailures,
	)

	return &HTTPServerMetrics{
		registry:           registry,
		service:            service,
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		requestInFlight:    requestInFlight,
		predictionsTotal:   predictionsTotal,
		predictionDuration: predictionDuration,
		priceEstimate:      priceEstimate,
		encodeFailures:     encodeFailures,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			m.service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(m.service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// normalizePath keeps label cardinality bounded.
func normalizePath(path string) string {
	switch path {
	case "/", "/predict", "/select/ram", "/select/inches", "/theme", "/healthz",
		"/openapi.yaml", "/v1/schema", "/v1/predictions", "/v1/predictions/batch":
		return path
	default:
		return "other"
	}
}

func (m *HTTPServerMetrics) RecordPrediction(status string, price float64, duration time.Duration) {
	if status == "" {
		status = "unknown"
	}
	m.predictionsTotal.WithLabelValues(m.service, status).Inc()
	m.predictionDuration.WithLabelValues(m.service, status).Observe(duration.Seconds())
	if status == "success" {
		m.priceEstimate.Observe(price)
	}
}

func (m *HTTPServerMetrics) RecordEncodeFailure(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	m.encodeFailures.WithLabelValues(m.service, kind).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}
